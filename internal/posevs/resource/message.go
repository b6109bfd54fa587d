package resource

import "github.com/enescakir/emoji"

const ProjectName = "posevs"

var Graffiti = `
   ___  ____  ________  _   _______
  / _ \/ __ \/ __/ __/ | | / / __/
 / ___/ /_/ /\ \/ _/   | |/ /\ \
/_/   \____/___/___/   |___/___/
`

var GreetingCLI = "\n%s %s\n\n" + emoji.VideoGame.String() + " Two players, one pose. Hold it better than your rival.\n\n" +
	"*Commands:*\n" +
	"start - pay the round cost and start a match\n" +
	"ad - watch an ad for gold\n" +
	"balance - show your gold\n" +
	"quit - leave the game\n\n"

var (
	TextCountdownShow        = emoji.Stopwatch.String() + " %d"
	TextCountdownTick        = emoji.Stopwatch.String() + " %d"
	TextCenterIcon           = emoji.PersonRunning.String() + " Strike a pose: *%s*"
	TextCenterIconAny        = emoji.PersonRunning.String() + " Strike any pose!"
	TextPercents             = emoji.HundredPoints.String() + " Player 1: %d%% | Player 2: %d%%"
	TextScoreboard           = emoji.Trophy.String() + " Score %d:%d"
	TextInsufficientGold     = emoji.BrokenHeart.String() + " Not enough gold to start, type *ad* to earn some"
	TextInsufficientGoldHide = emoji.CheckMark.String() + " Ready to play"
	TextBalance              = emoji.GemStone.String() + " %d %s"
	TextMatchFinished        = emoji.FirstPlaceMedal.String() + " Player %d wins the match %d:%d " + emoji.PartyPopper.String()
	TextAdStarted            = emoji.Robot.String() + " Ad is playing..."
	TextAdRewarded           = emoji.Star.String() + " Thanks for watching, reward granted"
	TextAdFinished           = emoji.ChequeredFlag.String() + " Ad finished"
	TextAdNotReady           = emoji.CrossMark.String() + " No ad available right now"
	TextUnknownCommand       = emoji.CrossMark.String() + " Unknown command %q, try start, ad, balance or quit"
	TextBye                  = emoji.Rocket.String() + " Bye!"
)

var (
	GoldOne  = "gold coin"
	GoldMany = "gold coins"
)
