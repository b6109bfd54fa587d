package posevs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/posevs/posevs/internal/ads"
	"github.com/posevs/posevs/internal/bus"
	"github.com/posevs/posevs/internal/economy"
	"github.com/posevs/posevs/internal/game"
	"github.com/posevs/posevs/internal/logging"
	"github.com/posevs/posevs/internal/pose"
	"github.com/posevs/posevs/internal/posevs/resource"
	"github.com/posevs/posevs/internal/registry"
	"github.com/posevs/posevs/internal/timer"
	"go.uber.org/zap"
)

var ErrCommandNotFound = errors.New("command not found")

const inboxSize = 16

type Command uint8

const (
	CmdStart Command = iota + 1
	CmdAd
	CmdBalance
	CmdQuit
)

var commands = map[string]Command{
	"start":   CmdStart,
	"ad":      CmdAd,
	"balance": CmdBalance,
	"quit":    CmdQuit,
}

func ParseCommand(s string) (Command, error) {
	cmd, ok := commands[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrCommandNotFound
	}
	return cmd, nil
}

// NewManager takes every service it needs from reg and panics when one is
// missing.
func NewManager(ctx context.Context, reg *registry.Registry) *Manager {
	m := &Manager{
		logger:    logging.FromContext(ctx).Named("posevs.manager"),
		config:    registry.MustGet[*Config](reg),
		bus:       registry.MustGet[*bus.Bus](reg),
		presenter: registry.MustGet[*Presenter](reg),
		ledger:    registry.MustGet[*economy.Ledger](reg),
		timer:     registry.MustGet[*timer.Service](reg),
		ads:       registry.MustGet[ads.Ads](reg),
		detector:  registry.MustGet[*pose.Detector](reg),
		sim:       registry.MustGet[pose.Simulator](reg),
		flow:      registry.MustGet[*game.Flow](reg),
		inbox:     make(chan Command, inboxSize),
	}

	if m.config.AdAfterMatch {
		m.bus.Subscribe(bus.KindMatchFinished, func(bus.Event) { m.showInterstitial() })
	}

	return m
}

// Manager drives the game: one goroutine runs the frame loop and applies
// queued commands between frames.
type Manager struct {
	logger    *zap.SugaredLogger
	config    *Config
	bus       *bus.Bus
	presenter *Presenter
	ledger    *economy.Ledger
	timer     *timer.Service
	ads       ads.Ads
	detector  *pose.Detector
	sim       pose.Simulator
	flow      *game.Flow
	inbox     chan Command

	// kind seen at the end of the previous frame, for auto start
	lastKind game.Kind
}

// Send queues cmd for the next frame.
func (m *Manager) Send(ctx context.Context, cmd Command) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case m.inbox <- cmd:
		return nil
	}
}

// Run ticks the game every TickRate until ctx is done or quit is received.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.config.TickRate)
	defer ticker.Stop()

	m.logger.Infof("game loop started, frame every %s", m.config.TickRate)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("game loop stopped")
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if quit := m.step(dt); quit {
				m.presenter.Println(resource.TextBye)
				return nil
			}
		}
	}
}

// step runs one frame and reports whether quit was requested.
func (m *Manager) step(dt float64) bool {
drain:
	for {
		select {
		case cmd := <-m.inbox:
			if m.handle(cmd) {
				return true
			}
		default:
			break drain
		}
	}

	m.timer.Tick(dt)

	if target, ok := m.detector.Target(); ok && m.flow.Current() == game.KindPose {
		m.detector.UpdatePlayers(m.sim.Sample(target))
	}

	m.flow.Tick(dt)

	kind := m.flow.Current()
	if m.config.AutoStart && kind == game.KindLobby && m.lastKind != game.KindLobby {
		m.flow.RequestStart()
		kind = m.flow.Current()
	}
	m.lastKind = kind

	return false
}

func (m *Manager) handle(cmd Command) bool {
	switch cmd {
	case CmdStart:
		m.flow.RequestStart()
	case CmdAd:
		m.WatchAd()
	case CmdBalance:
		m.bus.Publish(bus.BalanceUpdated{Balance: m.ledger.Balance()})
	case CmdQuit:
		m.logger.Info("quit requested")
		return true
	default:
		m.logger.Warnf("unknown command %d", cmd)
	}
	return false
}

// WatchAd plays a rewarded ad and grants the ad reward once it completes.
// It reports whether the ad was started.
func (m *Manager) WatchAd() bool {
	if !m.ads.Ready(ads.PlacementRewarded) {
		m.presenter.Println(resource.TextAdNotReady)
		return false
	}

	m.ads.ShowRewarded(func() {
		m.ledger.Grant(m.config.Economy.AdReward)
		m.logger.Infof("ad reward %d granted, balance %d", m.config.Economy.AdReward, m.ledger.Balance())
		m.bus.Publish(bus.HideInsufficientGold{})
	}, func() {
		m.logger.Infof("rewarded ad failed, no gold granted")
		m.presenter.Println(resource.TextAdNotReady)
	})
	return true
}

// showInterstitial plays an interstitial if no other ad is playing.
func (m *Manager) showInterstitial() {
	if !m.ads.Ready(ads.PlacementInterstitial) {
		m.logger.Debugf("interstitial skipped, another ad is playing")
		return
	}
	m.ads.ShowInterstitial(func() {
		m.logger.Debugf("interstitial closed")
	})
}

// ReadCommands parses one command per line from r and queues it. It returns
// after quit, at the end of r, or when ctx is done.
func (m *Manager) ReadCommands(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			errCh <- err
			close(lines)
		}()

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		err = scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errCh; err != nil {
					return fmt.Errorf("read commands: %w", err)
				}
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			cmd, err := ParseCommand(line)
			if err != nil {
				m.presenter.Println(fmt.Sprintf(resource.TextUnknownCommand, line))
				continue
			}
			if err := m.Send(ctx, cmd); err != nil {
				return nil
			}
			if cmd == CmdQuit {
				return nil
			}
		}
	}
}
