package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

var ErrMalformedEvent = errors.New("malformed event")

type Kind string

const (
	KindResize  Kind = "resize"
	KindClick   Kind = "click"
	KindDrag    Kind = "drag"
	KindDrop    Kind = "drop"
	KindRestart Kind = "restart"
)

// Event is one pointer, resize or restart event from the presentation shell.
type Event struct {
	Kind   Kind
	Player entity.Player
	Row    int
	Col    int
	X      float64
	Y      float64
}

// Parser turns console lines into events. Players are named by 1, 2 or their mark.
type Parser struct {
	marks entity.Marks
}

func NewParser(marks entity.Marks) *Parser {
	return &Parser{marks: marks}
}

// Parse - parses one line. ok is false for blank lines and # comments.
func (that *Parser) Parse(line string) (Event, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Event{}, false, nil
	}

	fields := strings.Fields(line)
	kind, args := Kind(strings.ToLower(fields[0])), fields[1:]

	switch kind {
	case KindRestart:
		if len(args) != 0 {
			return Event{}, false, fmt.Errorf("%w: %q takes no arguments", ErrMalformedEvent, kind)
		}
		return Event{Kind: kind}, true, nil

	case KindResize:
		if len(args) != 2 {
			return Event{}, false, fmt.Errorf("%w: usage: resize <width> <height>", ErrMalformedEvent)
		}
		x, y, err := parsePoint(args[0], args[1])
		if err != nil {
			return Event{}, false, err
		}
		return Event{Kind: kind, X: x, Y: y}, true, nil

	case KindClick:
		if len(args) != 2 {
			return Event{}, false, fmt.Errorf("%w: usage: click <row> <col>", ErrMalformedEvent)
		}
		row, errRow := strconv.Atoi(args[0])
		col, errCol := strconv.Atoi(args[1])
		if err := errors.Join(errRow, errCol); err != nil {
			return Event{}, false, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
		}
		return Event{Kind: kind, Row: row, Col: col}, true, nil

	case KindDrag, KindDrop:
		if len(args) != 3 {
			return Event{}, false, fmt.Errorf("%w: usage: %s <player> <x> <y>", ErrMalformedEvent, kind)
		}
		player, err := that.parsePlayer(args[0])
		if err != nil {
			return Event{}, false, err
		}
		x, y, err := parsePoint(args[1], args[2])
		if err != nil {
			return Event{}, false, err
		}
		return Event{Kind: kind, Player: player, X: x, Y: y}, true, nil

	default:
		return Event{}, false, fmt.Errorf("%w: unknown event %q", ErrMalformedEvent, fields[0])
	}
}

func (that *Parser) parsePlayer(arg string) (entity.Player, error) {
	switch arg {
	case "1":
		return entity.Player1, nil
	case "2":
		return entity.Player2, nil
	}

	player, err := that.marks.PlayerByMark(arg)
	if err != nil {
		return entity.NoPlayer, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	return player, nil
}

func parsePoint(xArg, yArg string) (float64, float64, error) {
	x, errX := strconv.ParseFloat(xArg, 64)
	y, errY := strconv.ParseFloat(yArg, 64)
	if err := errors.Join(errX, errY); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	if !finite(x) || !finite(y) {
		return 0, 0, fmt.Errorf("%w: non-finite point (%s, %s)", ErrMalformedEvent, xArg, yArg)
	}

	return x, y, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Result is a parsed event or the error of the line it came from.
type Result struct {
	Line  int
	Event Event
	Err   error
}

// Read - streams the events of r until EOF or ctx is done; the channel is closed at the end.
func (that *Parser) Read(ctx context.Context, r io.Reader) <-chan Result {
	out := make(chan Result)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r)
		line := 0
		for scanner.Scan() {
			line++

			event, ok, err := that.Parse(scanner.Text())
			if !ok && err == nil {
				continue
			}

			select {
			case out <- Result{Line: line, Event: event, Err: err}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case out <- Result{Line: line, Err: fmt.Errorf("failed to read events: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}
