package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/louisbranch/rollcall/internal/storage"
)

// StatusKind classifies one loop outcome shown to the operator.
type StatusKind string

const (
	StatusReady       StatusKind = "ready"
	StatusRecorded    StatusKind = "recorded"
	StatusInvalidScan StatusKind = "invalid_scan"
	StatusIDNotFound  StatusKind = "id_not_found"
	StatusError       StatusKind = "error"
)

// Status is one presentable loop outcome. Fields beyond Kind and Raw are
// populated as far as the loop got with the entry.
type Status struct {
	Kind         StatusKind
	Raw          string
	TrackingID   int64
	FirstName    string
	LastName     string
	TimeHHMM     string
	DateMMDDYYYY string
	CSVPath      string
	Detail       string
}

// Presenter renders each loop outcome together with the recent history,
// newest first.
type Presenter interface {
	Present(status Status, history []Event)
}

// State identifies where the session loop currently is.
type State string

const (
	StateAwaitingInput State = "awaiting_input"
	StateValidating    State = "validating"
	StateLookingUp     State = "looking_up"
	StateRecording     State = "recording"
	StateStopped       State = "stopped"
)

// Session drives the interactive scan loop: read one entry, validate it,
// look the student up, record the scan, present the outcome, repeat.
type Session struct {
	roster    storage.RosterStore
	recorder  *Recorder
	presenter Presenter
	history   *History

	mu    sync.Mutex
	state State
}

// NewSession creates a session reading students from roster and recording
// scans through recorder. The presenter may be nil.
func NewSession(roster storage.RosterStore, recorder *Recorder, presenter Presenter) *Session {
	return &Session{
		roster:    roster,
		recorder:  recorder,
		presenter: presenter,
		history:   NewHistory(DefaultHistorySize),
		state:     StateAwaitingInput,
	}
}

// State reports the loop's current position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Run consumes newline-delimited scan entries from input until input is
// exhausted or ctx is canceled. Each entry is handled fully before the
// next read; a failed entry presents its status and the loop continues.
func (s *Session) Run(ctx context.Context, input io.Reader) error {
	defer s.setState(StateStopped)

	s.present(Status{Kind: StatusReady})

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		s.setState(StateAwaitingInput)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read scan input: %w", err)
					}
				default:
				}
				return nil
			}
			s.handle(ctx, line)
		}
	}
}

func (s *Session) handle(ctx context.Context, raw string) {
	raw = strings.TrimSpace(raw)

	s.setState(StateValidating)
	trackingID, ok := NormalizeScan(raw)
	if !ok {
		s.present(Status{Kind: StatusInvalidScan, Raw: raw})
		return
	}

	s.setState(StateLookingUp)
	student, err := s.roster.LookupStudent(ctx, trackingID)
	if errors.Is(err, storage.ErrNotFound) {
		s.present(Status{Kind: StatusIDNotFound, Raw: raw, TrackingID: trackingID})
		return
	}
	if err != nil {
		s.present(Status{Kind: StatusError, Raw: raw, TrackingID: trackingID, Detail: err.Error()})
		return
	}

	s.setState(StateRecording)
	evt, csvPath, err := s.recorder.Record(ctx, trackingID, student.FirstName, student.LastName)
	if err != nil {
		s.present(Status{
			Kind:       StatusError,
			Raw:        raw,
			TrackingID: trackingID,
			FirstName:  student.FirstName,
			LastName:   student.LastName,
			Detail:     err.Error(),
		})
		return
	}

	s.history.Push(evt)
	s.present(Status{
		Kind:         StatusRecorded,
		Raw:          raw,
		TrackingID:   evt.TrackingID,
		FirstName:    evt.FirstName,
		LastName:     evt.LastName,
		TimeHHMM:     evt.TimeHHMM,
		DateMMDDYYYY: evt.DateMMDDYYYY,
		CSVPath:      csvPath,
	})
}

func (s *Session) present(status Status) {
	if s.presenter == nil {
		return
	}
	s.presenter.Present(status, s.history.Events())
}
