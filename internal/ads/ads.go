// Package ads simulates an ad network: every ad simply plays for a fixed
// duration of game time.
package ads

import (
	"context"
	"sync"

	"github.com/posevs/posevs/internal/bus"
	"github.com/posevs/posevs/internal/logging"
	"go.uber.org/zap"
)

const (
	PlacementDefault      = "default"
	PlacementInterstitial = "interstitial"
	PlacementRewarded     = "rewarded"
)

// Ads is what the game needs from an ad network.
type Ads interface {
	Ready(placement string) bool
	ShowInterstitial(onClosed func())
	ShowRewarded(onRewarded, onFailed func())
}

// Scheduler runs fn after seconds of game time.
type Scheduler interface {
	Delay(seconds float64, fn func())
}

type Publisher interface {
	Publish(bus.Event)
}

var _ Ads = (*Dummy)(nil)

func NewDummy(ctx context.Context, config Config, timer Scheduler, pub Publisher) (*Dummy, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Dummy{
		logger: logging.FromContext(ctx).Named("ads"),
		config: config,
		timer:  timer,
		pub:    pub,
	}, nil
}

// Dummy plays one ad at a time and never fails a started ad.
type Dummy struct {
	mtx sync.Mutex

	logger  *zap.SugaredLogger
	config  Config
	timer   Scheduler
	pub     Publisher
	playing string
}

// Ready reports whether an ad can be shown right now. Only one ad plays at a
// time whatever its placement, so the placement is not consulted.
func (d *Dummy) Ready(_ string) bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.playing == ""
}

func (d *Dummy) ShowInterstitial(onClosed func()) {
	d.show(PlacementInterstitial, false, d.config.InterstitialDuration.Seconds(), onClosed, onClosed)
}

// ShowRewarded plays a rewarded ad. onRewarded runs once it has played to
// the end; onFailed runs right away when another ad is still playing.
func (d *Dummy) ShowRewarded(onRewarded, onFailed func()) {
	d.show(PlacementRewarded, true, d.config.RewardedDuration.Seconds(), onRewarded, onFailed)
}

func (d *Dummy) show(placement string, rewarded bool, seconds float64, onDone, onBusy func()) {
	d.mtx.Lock()
	if d.playing != "" {
		busy := d.playing
		d.mtx.Unlock()

		d.logger.Infof("%s ad requested while %s ad is playing", placement, busy)
		if onBusy != nil {
			onBusy()
		}
		return
	}
	d.playing = placement
	d.mtx.Unlock()

	d.logger.Infof("playing %s ad for %.1fs", placement, seconds)
	d.publish(bus.AdStarted{Placement: placement, Rewarded: rewarded})

	d.timer.Delay(seconds, func() {
		d.mtx.Lock()
		d.playing = ""
		d.mtx.Unlock()

		d.logger.Infof("%s ad finished", placement)
		d.publish(bus.AdFinished{Placement: placement, Rewarded: rewarded})
		if onDone != nil {
			onDone()
		}
	})
}

func (d *Dummy) publish(e bus.Event) {
	if d.pub != nil {
		d.pub.Publish(e)
	}
}
