package posevs

import (
	"fmt"
	"io"
	"sync"

	"github.com/posevs/posevs/internal/bus"
	"github.com/posevs/posevs/internal/posevs/resource"
	"github.com/posevs/posevs/internal/strpool"
	"github.com/posevs/posevs/internal/util"
)

// presentedKinds are the events the console shows.
var presentedKinds = []bus.Kind{
	bus.KindCountdownShow,
	bus.KindCountdownTick,
	bus.KindSetCenterIcon,
	bus.KindShowPercents,
	bus.KindUpdateScoreboard,
	bus.KindShowInsufficientGold,
	bus.KindHideInsufficientGold,
	bus.KindBalanceUpdated,
	bus.KindMatchFinished,
	bus.KindAdStarted,
	bus.KindAdFinished,
}

func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Presenter prints game events as text lines.
type Presenter struct {
	mtx sync.Mutex

	w    io.Writer
	subs []bus.Subscription
	// the insufficient gold popup is shown at most once until hidden
	popup bool
}

func (p *Presenter) Attach(b *bus.Bus) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	for _, kind := range presentedKinds {
		p.subs = append(p.subs, b.Subscribe(kind, p.handle))
	}
}

func (p *Presenter) Detach(b *bus.Bus) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	for _, sub := range p.subs {
		b.Unsubscribe(sub)
	}
	p.subs = nil
}

func (p *Presenter) handle(e bus.Event) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	switch e.(type) {
	case bus.ShowInsufficientGold:
		if p.popup {
			return
		}
		p.popup = true
	case bus.HideInsufficientGold:
		if !p.popup {
			return
		}
		p.popup = false
	}

	if line := render(e); line != "" {
		_, _ = fmt.Fprintln(p.w, line)
	}
}

func (p *Presenter) Println(line string) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	_, _ = fmt.Fprintln(p.w, line)
}

func render(e bus.Event) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	switch ev := e.(type) {
	case bus.CountdownShow:
		fmt.Fprintf(buf, resource.TextCountdownShow, ev.Seconds)
	case bus.CountdownTick:
		fmt.Fprintf(buf, resource.TextCountdownTick, ev.Value)
	case bus.SetCenterIcon:
		if ev.Pose == "" {
			buf.WriteString(resource.TextCenterIconAny)
			break
		}
		fmt.Fprintf(buf, resource.TextCenterIcon, ev.Pose)
	case bus.ShowPercents:
		fmt.Fprintf(buf, resource.TextPercents, ev.P1, ev.P2)
	case bus.UpdateScoreboard:
		fmt.Fprintf(buf, resource.TextScoreboard, ev.A, ev.B)
	case bus.ShowInsufficientGold:
		buf.WriteString(resource.TextInsufficientGold)
	case bus.HideInsufficientGold:
		buf.WriteString(resource.TextInsufficientGoldHide)
	case bus.BalanceUpdated:
		fmt.Fprintf(buf, resource.TextBalance, ev.Balance, util.Noun(ev.Balance, resource.GoldOne, resource.GoldMany))
	case bus.MatchFinished:
		fmt.Fprintf(buf, resource.TextMatchFinished, ev.Winner, ev.A, ev.B)
	case bus.AdStarted:
		buf.WriteString(resource.TextAdStarted)
	case bus.AdFinished:
		if ev.Rewarded {
			buf.WriteString(resource.TextAdRewarded)
			break
		}
		buf.WriteString(resource.TextAdFinished)
	}

	return buf.String()
}
