package driver

// Status describes what happened to one file during a directory scan.
type Status uint8

const (
	StatusQueued Status = iota
	StatusClean
	StatusIssues
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusClean:
		return "clean"
	case StatusIssues:
		return "issues"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Event is one progress notification from the directory scanner.
type Event struct {
	Path   string
	Status Status
	Issues int
}

// EventSink receives progress events. Send must not block forever:
// сканер шлёт события синхронно из воркеров.
type EventSink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel (the bubbletea UI reads it).
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(e Event) {
	if s.Ch != nil {
		s.Ch <- e
	}
}
