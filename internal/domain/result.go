package domain

// Result carries the outcome of a business operation. It is a success exactly
// when it has no messages; failures are expected outcomes, not errors.
type Result[T any] struct {
	messages []string
	payload  T
}

func Success[T any](payload T) Result[T] {
	return Result[T]{payload: payload}
}

// Failure builds a failed result. At least one message is always recorded.
func Failure[T any](messages ...string) Result[T] {
	if len(messages) == 0 {
		messages = []string{"Operation failed."}
	}
	out := make([]string, len(messages))
	copy(out, messages)
	return Result[T]{messages: out}
}

func (r Result[T]) IsSuccess() bool {
	return len(r.messages) == 0
}

// Messages returns a copy of the failure messages in the order they were added.
func (r Result[T]) Messages() []string {
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r Result[T]) Payload() T {
	return r.payload
}
