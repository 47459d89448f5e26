package ibctesting

import (
	"fmt"
	"testing"
	"time"

	"github.com/spf13/viper"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"
)

const (
	// MaxAccounts is the number of funded sender accounts of every chain
	MaxAccounts = 3
)

var (
	ChainIDPrefix = "testchain"
	// to disable revision format, set ChainIDSuffix to ""
	ChainIDSuffix   = "-1"
	globalStartTime = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	TimeIncrement   = time.Second * 5
)

// Coordinator is a testing struct which contains N TestChain's. It handles keeping all chains
// in sync with regards to time.
type Coordinator struct {
	*testing.T

	CurrentTime time.Time
	Chains      map[string]*TestChain
}

// NewCoordinator initializes Coordinator with N TestChain's
func NewCoordinator(t *testing.T, n int) *Coordinator {
	t.Helper()
	return NewCoordinatorWithAppOptions(t, n, viper.New())
}

// NewCoordinatorWithAppOptions initializes a Coordinator with N TestChain's whose apps are
// built with the given node options.
func NewCoordinatorWithAppOptions(t *testing.T, n int, appOpts servertypes.AppOptions) *Coordinator {
	t.Helper()

	coord := &Coordinator{
		T:           t,
		CurrentTime: globalStartTime,
		Chains:      make(map[string]*TestChain),
	}

	for i := 1; i <= n; i++ {
		chainID := GetChainID(i)
		coord.Chains[chainID] = NewTestChain(t, coord, chainID, appOpts)
	}

	return coord
}

// GetChainID returns the chainID used for the provided index.
func GetChainID(index int) string {
	return fmt.Sprintf("%s%d%s", ChainIDPrefix, index, ChainIDSuffix)
}

// GetChain returns the TestChain using the given chainID and returns an error if it does
// not exist.
func (coord *Coordinator) GetChain(chainID string) *TestChain {
	chain, found := coord.Chains[chainID]
	if !found {
		coord.Fatalf("%s chain does not exist", chainID)
	}
	return chain
}

// IncrementTime iterates through all the TestChain's and increments their current header time
// by 5 seconds.
func (coord *Coordinator) IncrementTime() {
	coord.IncrementTimeBy(TimeIncrement)
}

// IncrementTimeBy iterates through all the TestChain's and increments their current header time
// by specified time.
func (coord *Coordinator) IncrementTimeBy(increment time.Duration) {
	coord.CurrentTime = coord.CurrentTime.Add(increment).UTC()
	coord.UpdateTime()
}

// UpdateTime updates all clocks for the TestChains to the current global time.
func (coord *Coordinator) UpdateTime() {
	for _, chain := range coord.Chains {
		chain.CurrentHeader.Time = coord.CurrentTime.UTC()
	}
}

// Setup opens a transfer channel between the two chains of the path.
func (coord *Coordinator) Setup(path *Path) {
	path.Setup()
}
