package game

import (
	"math/rand"
	"time"
)

// Dice is the two-die roller. Tests substitute a scripted implementation.
type Dice interface {
	Roll() (int, int)
}

type stdDice struct {
	r *rand.Rand
}

func NewDice() Dice {
	return &stdDice{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (d *stdDice) Roll() (int, int) {
	return d.r.Intn(6) + 1, d.r.Intn(6) + 1
}
