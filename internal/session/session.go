// Package session owns a calculator state on its own goroutine, so that
// hosts can deliver button presses from any goroutine.
package session

import (
	crand "crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/fjl/giocalc/internal/calc"
)

// ErrClosed is returned by calls on a closed session.
var ErrClosed = errors.New("session closed")

type ID string

func randomID() ID {
	s := make([]byte, 8)
	if _, err := crand.Read(s); err != nil {
		panic(err)
	}
	return ID(hex.EncodeToString(s))
}

// request is a press delivered to mainLoop. A request without a button only
// reads the display.
type request struct {
	button  calc.Button
	press   bool
	replyCh chan calc.Display
}

// Session serializes presses to a single calculator state.
type Session struct {
	id     ID
	engine calc.Engine
	log    *log.Logger

	reqCh  chan request
	quitCh chan struct{}
	closed sync.Once
	wg     sync.WaitGroup
}

// New creates a session and starts its loop. A nil logger discards output.
func New(engine calc.Engine, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		id:     randomID(),
		engine: engine,
		log:    logger,
		reqCh:  make(chan request),
		quitCh: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.mainLoop()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// Close stops the session and waits for its loop to exit.
func (s *Session) Close() {
	s.closed.Do(func() { close(s.quitCh) })
	s.wg.Wait()
}

// Press applies b and returns the new display.
func (s *Session) Press(b calc.Button) (calc.Display, error) {
	return s.do(request{button: b, press: true})
}

// Display returns the current display.
func (s *Session) Display() (calc.Display, error) {
	return s.do(request{})
}

func (s *Session) do(req request) (calc.Display, error) {
	req.replyCh = make(chan calc.Display, 1)
	select {
	case s.reqCh <- req:
	case <-s.quitCh:
		return calc.Display{}, ErrClosed
	}
	return <-req.replyCh, nil
}

func (s *Session) mainLoop() {
	defer s.wg.Done()

	var (
		state   calc.State
		presses int
	)
	s.log.Printf("session %s opened (precision %v, errors %v)", s.id, s.engine.Config.Precision, s.engine.Config.Errors)
	for {
		select {
		case req := <-s.reqCh:
			if req.press {
				prev := state
				state = s.engine.Press(state, req.button)
				presses++
				if prev.Err == nil && state.Err != nil {
					s.log.Printf("session %s: evaluation failed: %v", s.id, state.Err)
				}
			}
			req.replyCh <- s.engine.Display(state)

		case <-s.quitCh:
			s.log.Printf("session %s closed after %d presses", s.id, presses)
			return
		}
	}
}
