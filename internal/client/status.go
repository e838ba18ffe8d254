package client

import (
	"sync"
	"time"
)

type SaveStatus string

const (
	StatusNone    SaveStatus = ""
	StatusSaving  SaveStatus = "saving"
	StatusSuccess SaveStatus = "success"
	StatusError   SaveStatus = "error"
)

const StatusClearAfter = 2 * time.Second

// StatusLine es el mensaje de guardado del panel: saving pasa a success o error
// y se borra solo a los 2s. Un Begin nuevo cancela el borrado pendiente.
type StatusLine struct {
	mu     sync.Mutex
	status SaveStatus
	timer  *time.Timer
	seq    int
	after  func(d time.Duration, f func()) *time.Timer
}

func NewStatusLine() *StatusLine {
	return &StatusLine{after: time.AfterFunc}
}

func (s *StatusLine) Status() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *StatusLine) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
	s.seq++
	s.status = StatusSaving
}

// Done cierra el guardado en curso según err.
func (s *StatusLine) Done(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusSuccess
	if err != nil {
		s.status = StatusError
	}

	s.stopTimer()
	seq := s.seq
	s.timer = s.after(StatusClearAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.seq == seq {
			s.status = StatusNone
		}
	})
}

// Track envuelve una operación de guardado completa.
func (s *StatusLine) Track(save func() error) error {
	s.Begin()
	err := save()
	s.Done(err)
	return err
}

func (s *StatusLine) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
