package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
	"github.com/rocketscienceinc/gobblet-jr/internal/gobblet"
	"github.com/rocketscienceinc/gobblet-jr/internal/repository"
	"github.com/rocketscienceinc/gobblet-jr/internal/usecase"
	"github.com/rocketscienceinc/gobblet-jr/testing/suite"
)

var testKeys = Keys{Reset: 'r', Quit: 'q'}

func newGame(t *testing.T) (context.Context, *suite.Suite, *usecase.GameUseCase) {
	t.Helper()

	ctx, st := suite.New(t)
	game := usecase.NewGameUseCase(st.Logger, gobblet.NewEngine(), repository.NewResultRepository())

	return ctx, st, game
}

func newController(t *testing.T) (context.Context, *Controller, *usecase.GameUseCase) {
	t.Helper()

	ctx, st, game := newGame(t)
	controller := NewController(st.Logger, game, testKeys)
	controller.SetLayout(NewLayout(0, 0, 80, 24))

	return ctx, controller, game
}

// clickCell clicks the centre of a board cell through the layout.
func clickCell(ctx context.Context, controller *Controller, row, col int) Action {
	cell := controller.Layout().Cell(entity.Coord{Row: row, Col: col})
	return controller.Click(ctx, cell.X+cell.W/2, cell.Y+cell.H/2)
}

func clickSlot(ctx context.Context, controller *Controller, color entity.Color, size entity.Size) Action {
	slot := controller.Layout().Slot(color, size)
	return controller.Click(ctx, slot.X+1, slot.Y+1)
}

func TestController_Click(t *testing.T) {
	t.Run("Reserve click then cell click places a piece", func(t *testing.T) {
		// Given: a new game
		ctx, controller, game := newController(t)

		// When: red clicks its large slot and then the centre cell
		require.Equal(t, ActionRedraw, clickSlot(ctx, controller, entity.Red, entity.Large))
		require.NotNil(t, game.Selected())
		require.Equal(t, ActionRedraw, clickCell(ctx, controller, 1, 1))

		// Then: the piece is on the board and blue is to move
		top := game.Top(entity.Coord{Row: 1, Col: 1})
		require.NotNil(t, top)
		assert.Equal(t, entity.Large, top.Size())
		assert.Equal(t, entity.StateBlueTurn, game.State())
		assert.Empty(t, controller.Message())
	})

	t.Run("The opponent's reserve is refused", func(t *testing.T) {
		ctx, controller, game := newController(t)

		clickSlot(ctx, controller, entity.Blue, entity.Small)

		assert.Nil(t, game.Selected())
		assert.Equal(t, "That reserve belongs to the other player.", controller.Message())
	})

	t.Run("Clicking an own piece re-selects it", func(t *testing.T) {
		// Given: red and blue each placed a piece and red holds a reserve piece
		ctx, controller, game := newController(t)
		clickSlot(ctx, controller, entity.Red, entity.Medium)
		clickCell(ctx, controller, 0, 0)
		clickSlot(ctx, controller, entity.Blue, entity.Medium)
		clickCell(ctx, controller, 2, 2)
		clickSlot(ctx, controller, entity.Red, entity.Small)

		// When: red clicks its own medium piece on (0,0), which is not a legal target
		clickCell(ctx, controller, 0, 0)

		// Then: the board piece becomes the selection
		selected := game.Selected()
		require.NotNil(t, selected)
		assert.Equal(t, entity.Medium, selected.Size())
		assert.False(t, selected.InReserve())
	})

	t.Run("Clicking the selected piece keeps it selected and clears feedback", func(t *testing.T) {
		// Given: red selected its medium on (0,0) and then clicked blue's reserve
		ctx, controller, game := newController(t)
		clickSlot(ctx, controller, entity.Red, entity.Medium)
		clickCell(ctx, controller, 0, 0)
		clickSlot(ctx, controller, entity.Blue, entity.Medium)
		clickCell(ctx, controller, 2, 2)
		clickCell(ctx, controller, 0, 0)
		clickSlot(ctx, controller, entity.Blue, entity.Small)
		require.NotEmpty(t, controller.Message())

		// When: red clicks the cell of the selected piece
		require.Equal(t, ActionRedraw, clickCell(ctx, controller, 0, 0))

		// Then: the same piece stays selected and the message is gone
		selected := game.Selected()
		require.NotNil(t, selected)
		loc, onBoard := selected.Location()
		assert.True(t, onBoard)
		assert.Equal(t, entity.Coord{Row: 0, Col: 0}, loc)
		assert.Empty(t, controller.Message())
		assert.Equal(t, entity.StateRedTurn, game.State())
	})

	t.Run("An illegal target clears the selection", func(t *testing.T) {
		// Given: blue medium on (1,1) and red holding a small piece
		ctx, controller, game := newController(t)
		clickSlot(ctx, controller, entity.Red, entity.Large)
		clickCell(ctx, controller, 0, 0)
		clickSlot(ctx, controller, entity.Blue, entity.Medium)
		clickCell(ctx, controller, 1, 1)
		clickSlot(ctx, controller, entity.Red, entity.Small)

		// When: red clicks the blue medium
		clickCell(ctx, controller, 1, 1)

		// Then: nothing moved and the selection is gone
		assert.Nil(t, game.Selected())
		assert.Equal(t, 1, game.Depth(entity.Coord{Row: 1, Col: 1}))
		assert.Equal(t, "The selected piece cannot go there.", controller.Message())
	})

	t.Run("Empty cells without a selection report nothing to pick up", func(t *testing.T) {
		ctx, controller, _ := newController(t)

		clickCell(ctx, controller, 2, 1)

		assert.Equal(t, "Nothing to pick up there.", controller.Message())
	})

	t.Run("Clicks outside the scene are ignored", func(t *testing.T) {
		ctx, controller, _ := newController(t)

		assert.Equal(t, ActionNone, controller.Click(ctx, 0, 0))
	})
}

// winForRed plays red to a win on row 0 through the keyboard.
func winForRed(ctx context.Context, t *testing.T, controller *Controller) {
	t.Helper()

	for _, r := range "l1l5l2m9m3" {
		require.Equal(t, ActionRedraw, controller.Key(ctx, r), "key %c", r)
	}
}

func TestController_Key(t *testing.T) {
	t.Run("Size keys and digits play for the player to move", func(t *testing.T) {
		// Given: a new game
		ctx, controller, game := newController(t)

		// When: red types l then 5
		controller.Key(ctx, 'l')
		controller.Key(ctx, '5')

		// Then: a red large sits in the centre
		top := game.Top(entity.Coord{Row: 1, Col: 1})
		require.NotNil(t, top)
		assert.Equal(t, entity.Red, top.Color())
		assert.Equal(t, entity.Large, top.Size())
	})

	t.Run("Input is ignored once the game is over", func(t *testing.T) {
		// Given: red has won
		ctx, controller, game := newController(t)
		winForRed(ctx, t, controller)
		require.Equal(t, entity.StateRedWin, game.State())

		// Then: board, reserve and size keys do nothing
		assert.Equal(t, ActionNone, controller.Key(ctx, '7'))
		assert.Equal(t, ActionNone, controller.Key(ctx, 's'))
		assert.Equal(t, ActionNone, clickSlot(ctx, controller, entity.Blue, entity.Small))
		assert.Nil(t, game.Top(entity.Coord{Row: 2, Col: 0}))
	})

	t.Run("Reset key starts a new match", func(t *testing.T) {
		ctx, controller, game := newController(t)
		winForRed(ctx, t, controller)

		action := controller.Key(ctx, 'r')

		assert.Equal(t, ActionRedraw, action)
		assert.Equal(t, entity.StateRedTurn, game.State())
		assert.Nil(t, game.Top(entity.Coord{Row: 0, Col: 0}))
	})

	t.Run("Quit key asks to quit", func(t *testing.T) {
		ctx, controller, _ := newController(t)

		assert.Equal(t, ActionQuit, controller.Key(ctx, 'q'))
		assert.Equal(t, ActionNone, controller.Key(ctx, 'z'))
	})
}

func TestController_Cancel(t *testing.T) {
	ctx, controller, game := newController(t)
	assert.Equal(t, ActionNone, controller.Cancel(ctx))

	controller.Key(ctx, 'm')
	require.NotNil(t, game.Selected())

	assert.Equal(t, ActionRedraw, controller.Cancel(ctx))
	assert.Nil(t, game.Selected())
}
