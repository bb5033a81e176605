// Package audio toggles the looped ambient track.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"quickreview/internal/logging"
)

// DefaultTrack is the café ambience loop.
const DefaultTrack = "https://cdn.pixabay.com/audio/2022/03/23/audio_d0f62d1c68.mp3"

// DefaultCommand plays a URL or file in a loop without a window.
var DefaultCommand = []string{"ffplay", "-nodisp", "-loglevel", "quiet", "-loop", "0"}

// Playback is a running track.
type Playback interface {
	Stop() error
}

// Player starts looped playback of a track.
type Player interface {
	Play(ctx context.Context, track string) (Playback, error)
}

// ExecPlayer runs an external command with the track appended as the last
// argument.
type ExecPlayer struct {
	Command []string
}

type execPlayback struct {
	cmd  *exec.Cmd
	done chan error
}

// Play starts the player process. The process outlives ctx; only Stop
// ends it.
func (p ExecPlayer) Play(ctx context.Context, track string) (Playback, error) {
	command := p.Command
	if len(command) == 0 {
		command = DefaultCommand
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bin, err := exec.LookPath(command[0])
	if err != nil {
		return nil, fmt.Errorf("audio player %q unavailable: %w", command[0], err)
	}

	args := append(append([]string(nil), command[1:]...), track)
	cmd := exec.Command(bin, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start audio player: %w", err)
	}

	pb := &execPlayback{cmd: cmd, done: make(chan error, 1)}
	go func() { pb.done <- cmd.Wait() }()
	return pb, nil
}

func (p *execPlayback) Stop() error {
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop audio player: %w", err)
	}
	<-p.done
	return nil
}

// Controller owns the play/pause state.
type Controller struct {
	mu      sync.Mutex
	player  Player
	track   string
	current Playback
}

// NewController creates a paused controller.
func NewController(player Player, track string) *Controller {
	if track == "" {
		track = DefaultTrack
	}
	return &Controller{player: player, track: track}
}

// Playing reports whether the track is playing.
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// Toggle pauses a playing track or starts a paused one and returns the
// new state. A start failure is logged and leaves the state unchanged.
func (c *Controller) Toggle(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	log := logging.Get(logging.CategoryAudio)

	if c.current != nil {
		if err := c.current.Stop(); err != nil {
			log.Warn("stop failed: %v", err)
		}
		c.current = nil
		log.Info("paused")
		return false, nil
	}

	if c.player == nil {
		log.Warn("play rejected: no player configured")
		return false, errors.New("no audio player configured")
	}
	pb, err := c.player.Play(ctx, c.track)
	if err != nil {
		log.Warn("play rejected: %v", err)
		return false, err
	}
	c.current = pb
	log.Info("playing %s", c.track)
	return true, nil
}

// Close stops playback if any.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	err := c.current.Stop()
	c.current = nil
	return err
}
