package model

const (
	// InitialBalance баланс нового стола и после сброса
	InitialBalance = 1000
	// InitialStake ставка по умолчанию
	InitialStake = 10
)

// Multipliers are gross: the returned amount includes the stake itself.
const (
	NumberPayout    = 36
	EvenMoneyPayout = 2
)

// DefaultChips номиналы фишек, которые предлагает стол
var DefaultChips = []int{10, 50, 100, 500}

const (
	MsgStakeSet          = "Bet Amount Set: $%d"
	MsgBetPlaced         = "Bet Placed: $%d on %s"
	MsgInsufficient      = "Insufficient Balance!"
	MsgPlaceBetFirst     = "Place a Bet First!"
	MsgWin               = "Winning Number: %s (%s). You won $%d!"
	MsgLose              = "Winning Number: %s (%s). Better luck next time!"
	MsgInvalidStake      = "Bet amount must be positive"
	MsgUnrecognizedLabel = "Unknown bet: %q"
)
