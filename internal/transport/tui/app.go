package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/gobblet-jr/internal/config"
	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
)

const (
	pageBoard    = "board"
	pageGameOver = "gameover"

	buttonNewGame = "New game"
	buttonQuit    = "Quit"

	statusHeight = 4
)

// UI is the terminal front end: the board scene, a status panel and a
// game-over dialog.
type UI struct {
	logger *slog.Logger
	ctx    context.Context

	app        *tview.Application
	root       *tview.Flex
	pages      *tview.Pages
	board      *tview.Box
	status     *tview.TextView
	gameOver   *tview.Modal
	controller *Controller
	scene      *scene

	game  gameUseCase
	conf  *config.Config
	keys  Keys
	shown bool
}

func New(logger *slog.Logger, conf *config.Config, game gameUseCase) *UI {
	keys := Keys{
		Reset: config.RuneOf(conf.Keys.Reset),
		Quit:  config.RuneOf(conf.Keys.Quit),
	}

	that := &UI{
		logger:     logger.With("component", "ui"),
		ctx:        context.Background(),
		app:        tview.NewApplication(),
		pages:      tview.NewPages(),
		board:      tview.NewBox(),
		status:     tview.NewTextView(),
		gameOver:   tview.NewModal(),
		controller: NewController(logger, game, keys),
		scene:      &scene{game: game, colors: newPalette(conf.Theme)},
		game:       game,
		conf:       conf,
		keys:       keys,
	}

	that.board.SetDrawFunc(that.drawBoard)
	that.board.SetMouseCapture(that.handleMouse)

	that.status.
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	that.gameOver.
		AddButtons([]string{buttonNewGame, buttonQuit}).
		SetDoneFunc(that.handleGameOver)

	that.pages.
		AddPage(pageBoard, that.board, true, true).
		AddPage(pageGameOver, that.gameOver, false, false)

	that.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(that.pages, 0, 1, true).
		AddItem(that.status, statusHeight, 0, false)

	that.app.
		SetRoot(that.root, true).
		EnableMouse(!conf.DisableMouse).
		SetInputCapture(that.handleKey)

	that.refresh()

	return that
}

// Run - blocks until the user quits or Stop is called.
func (that *UI) Run(ctx context.Context) error {
	that.ctx = ctx
	that.logger.Info("ui started", "mouse", !that.conf.DisableMouse)

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	that.logger.Info("ui stopped")

	return nil
}

// Stop is safe to call from any goroutine.
func (that *UI) Stop() {
	that.app.Stop()
}

func (that *UI) drawBoard(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	layout := NewLayout(x, y, width, height)
	that.controller.SetLayout(layout)
	that.scene.draw(screen, layout)

	return x, y, width, height
}

func (that *UI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}

	x, y := event.Position()
	that.apply(that.controller.Click(that.ctx, x, y))

	return action, nil
}

func (that *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape && !that.dialogVisible() {
		that.apply(that.controller.Cancel(that.ctx))
		return nil
	}

	if event.Key() != tcell.KeyRune {
		return event
	}

	// The dialog keeps its own keys, only the global commands pass through.
	if that.dialogVisible() && event.Rune() != that.keys.Quit && event.Rune() != that.keys.Reset {
		return event
	}

	action := that.controller.Key(that.ctx, event.Rune())
	if action == ActionNone {
		return event
	}

	that.apply(action)

	return nil
}

func (that *UI) handleGameOver(_ int, label string) {
	switch label {
	case buttonNewGame:
		that.apply(that.controller.Reset(that.ctx))
	case buttonQuit:
		that.apply(ActionQuit)
	default:
		that.hideDialog()
	}
}

func (that *UI) apply(action Action) {
	switch action {
	case ActionQuit:
		that.app.Stop()
	case ActionRedraw:
		that.refresh()
	case ActionNone:
	}
}

// refresh updates the status panel and shows the dialog once per finished match.
func (that *UI) refresh() {
	state := that.game.State()

	tally, err := that.game.Tally(that.ctx)
	if err != nil {
		that.logger.Error("failed to read tally", "error", err)
	}

	that.status.SetText(that.statusText(state, tally))

	switch {
	case state.IsFinished() && !that.shown:
		that.shown = true
		that.gameOver.SetText(that.outcomeText(state))
		that.pages.ShowPage(pageGameOver)
		that.app.SetFocus(that.gameOver)
	case !state.IsFinished() && that.shown:
		that.shown = false
		that.hideDialog()
	}
}

func (that *UI) dialogVisible() bool {
	name, _ := that.pages.GetFrontPage()
	return name == pageGameOver
}

func (that *UI) hideDialog() {
	that.pages.HidePage(pageGameOver)
	that.app.SetFocus(that.board)
}

func (that *UI) colorTag(color entity.Color) string {
	name := that.conf.Theme.Red
	if color == entity.Blue {
		name = that.conf.Theme.Blue
	}
	return fmt.Sprintf("[%s::b]%s[-::-]", name, strings.ToUpper(color.String()))
}

func (that *UI) outcomeText(state entity.GameState) string {
	if winner, ok := state.Winner(); ok {
		return fmt.Sprintf("%s wins!", strings.ToUpper(winner.String()))
	}
	return "It's a draw!"
}

func (that *UI) statusText(state entity.GameState, tally entity.Tally) string {
	var headline string
	switch color, ok := state.TurnColor(); {
	case ok:
		headline = that.colorTag(color) + " to move"
	case state == entity.StateDraw:
		headline = "Draw"
	default:
		winner, _ := state.Winner()
		headline = that.colorTag(winner) + " wins"
	}

	lines := []string{
		headline,
		fmt.Sprintf("[yellow]%s[-]", tview.Escape(that.controller.Message())),
		fmt.Sprintf("Session: %s %d  %s %d  draws %d",
			that.colorTag(entity.Red), tally.RedWins, that.colorTag(entity.Blue), tally.BlueWins, tally.Draws),
		fmt.Sprintf("[gray]click or 1-9 / l m s to play, esc to cancel, %c new game, %c quit[-]", that.keys.Reset, that.keys.Quit),
	}

	return strings.Join(lines, "\n")
}
