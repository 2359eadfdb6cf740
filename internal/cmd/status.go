package cmd

// Status is the process exit status of one invocation.
type Status int

const (
	StatusSuccess      Status = 0
	StatusInvalidUsage Status = 1
	StatusNoCwd        Status = 2
	StatusReadDir      Status = 3
	StatusStat         Status = 4
	StatusTime         Status = 5
	StatusUnknown      Status = 255
)

// Then folds the status of a later step into s. A failure replaces whatever
// came before it, so the last failure wins; success leaves s unchanged.
//
// TODO: consider reporting the most severe failure instead of the last one.
func (s Status) Then(next Status) Status {
	if next != StatusSuccess {
		return next
	}
	return s
}
