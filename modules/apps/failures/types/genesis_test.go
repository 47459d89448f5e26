package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

func TestValidateGenesis(t *testing.T) {
	var genState *types.GenesisState

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"default genesis",
			func() {
				genState = types.DefaultGenesisState()
			},
			true,
		},
		{
			"valid genesis",
			func() {},
			true,
		},
		{
			"duplicate failure id",
			func() {
				genState.Failures[1].ID = genState.Failures[0].ID
			},
			false,
		},
		{
			"failure id not below the next id",
			func() {
				genState.NextFailureID = 3
			},
			false,
		},
		{
			"invalid failure",
			func() {
				genState.Failures[0].AckType = ""
			},
			false,
		},
	}

	for _, tc := range testCases {
		genState = types.NewGenesisState(
			[]types.Failure{
				types.NewFailure(validAddress, 1, types.AckTypeAck, validPacket, "callback failed: out of gas"),
				types.NewFailure(validAddress, 3, types.AckTypeTimeout, validPacket, "callback failed: fault"),
			},
			5,
		)

		tc.malleate()

		err := genState.Validate()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}
