// Package driver runs a simulation at a fixed tick from an external clock,
// feeding it inputs sampled once per tick.
package driver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akmonengine/cubefall"
)

var ErrInvalidScript = errors.New("invalid input script")

// InputSource is sampled once at the start of every tick
type InputSource interface {
	Sample(tick uint64) cubefall.Input
}

// InputFunc adapts a function to an InputSource
type InputFunc func(tick uint64) cubefall.Input

func (f InputFunc) Sample(tick uint64) cubefall.Input {
	return f(tick)
}

// Segment holds an input for a number of ticks
type Segment struct {
	Input cubefall.Input
	Ticks uint64
}

// Script replays segments in order. Once exhausted, it holds no key,
// or starts over when Loop is set.
type Script struct {
	Segments []Segment
	Loop     bool
}

func (s Script) Length() uint64 {
	var total uint64
	for _, segment := range s.Segments {
		total += segment.Ticks
	}
	return total
}

// Sample returns the input of the segment covering tick (ticks start at 0)
func (s Script) Sample(tick uint64) cubefall.Input {
	length := s.Length()
	if length == 0 {
		return cubefall.Input{}
	}
	if tick >= length {
		if !s.Loop {
			return cubefall.Input{}
		}
		tick %= length
	}

	for _, segment := range s.Segments {
		if tick < segment.Ticks {
			return segment.Input
		}
		tick -= segment.Ticks
	}
	return cubefall.Input{}
}

var scriptKeys = map[string]cubefall.Input{
	"none":  {},
	"left":  {Left: true},
	"right": {Right: true},
	"both":  {Left: true, Right: true},
}

// ParseScript reads a comma separated list of key:ticks segments,
// e.g. "right:60,none:30,left:10". Keys are none, left, right and both.
func ParseScript(text string) (Script, error) {
	var script Script

	text = strings.TrimSpace(text)
	if text == "" {
		return script, nil
	}

	for _, part := range strings.Split(text, ",") {
		key, count, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found {
			return Script{}, fmt.Errorf("%w: segment %q has no tick count", ErrInvalidScript, part)
		}

		input, ok := scriptKeys[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			return Script{}, fmt.Errorf("%w: unknown key %q", ErrInvalidScript, key)
		}

		ticks, err := strconv.ParseUint(strings.TrimSpace(count), 10, 64)
		if err != nil {
			return Script{}, fmt.Errorf("%w: tick count %q: %w", ErrInvalidScript, count, err)
		}

		script.Segments = append(script.Segments, Segment{Input: input, Ticks: ticks})
	}

	return script, nil
}
