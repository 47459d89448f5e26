package simapp

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	paramskeeper "github.com/cosmos/cosmos-sdk/x/params/keeper"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"

	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"

	fee "github.com/ibc-apps/fee-escrow/modules/apps/29-fee"
	feekeeper "github.com/ibc-apps/fee-escrow/modules/apps/29-fee/keeper"
	feetypes "github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	"github.com/ibc-apps/fee-escrow/modules/apps/failures"
	failureskeeper "github.com/ibc-apps/fee-escrow/modules/apps/failures/keeper"
	failurestypes "github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
	ibchooks "github.com/ibc-apps/fee-escrow/modules/apps/ibc-hooks"
	packetforward "github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware"
	packetforwardkeeper "github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/keeper"
	packetforwardtypes "github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
	"github.com/ibc-apps/fee-escrow/modules/apps/transfer"
	transferkeeper "github.com/ibc-apps/fee-escrow/modules/apps/transfer/keeper"
	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
	porttypes "github.com/ibc-apps/fee-escrow/modules/core/05-port/types"
	"github.com/ibc-apps/fee-escrow/testing/mock"
)

const (
	// FaucetAccountName is the module account tests mint their starting balances from
	FaucetAccountName = "faucet"

	// ContractStoreKey is the store key of the mock contract runtime
	ContractStoreKey = "wasm"

	// FlagCallbackGasLimit overrides the gas limit of sudo callbacks on this node
	FlagCallbackGasLimit = "fee-escrow.callback-gas-limit"
)

var (
	// ModuleBasics defines the module BasicManager of the application modules
	ModuleBasics = module.NewBasicManager(
		transfer.AppModuleBasic{},
		fee.AppModuleBasic{},
		failures.AppModuleBasic{},
		packetforward.AppModuleBasic{},
	)

	// module account permissions
	maccPerms = map[string][]string{
		FaucetAccountName:        {authtypes.Minter},
		transfertypes.ModuleName: {authtypes.Minter, authtypes.Burner},
		feetypes.ModuleName:      nil,
	}
)

// SimApp is a single chain of the fee escrow stack: real auth, bank and params keepers over an
// in-memory multistore, a store backed channel keeper and a mock contract runtime. Packets reach
// the application through IBCStack:
//
//	ibc-hooks -> packet-forward-middleware -> 29-fee -> transfer
type SimApp struct {
	logger log.Logger

	cms         store.CommitMultiStore
	keys        map[string]*sdk.KVStoreKey
	tkeys       map[string]*sdk.TransientStoreKey
	appCodec    codec.Codec
	legacyAmino *codec.LegacyAmino

	ParamsKeeper        paramskeeper.Keeper
	AccountKeeper       authkeeper.AccountKeeper
	BankKeeper          bankkeeper.BaseKeeper
	ChannelKeeper       *mock.ChannelKeeper
	ContractKeeper      *mock.ContractKeeper
	FailuresKeeper      failureskeeper.Keeper
	FeeKeeper           feekeeper.Keeper
	TransferKeeper      transferkeeper.Keeper
	PacketForwardKeeper *packetforwardkeeper.Keeper

	// IBCStack is the outermost IBC module of the transfer port
	IBCStack porttypes.IBCModule

	mm          *module.Manager
	router      *baseapp.Router
	queryRouter *baseapp.QueryRouter
	invariants  []invariantRoute
}

type invariantRoute struct {
	moduleName string
	route      string
	invariant  sdk.Invariant
}

// RegisterRoute implements sdk.InvariantRegistry
func (app *SimApp) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	app.invariants = append(app.invariants, invariantRoute{moduleName, route, invar})
}

// NewSimApp returns a reference to an initialized SimApp.
func NewSimApp(logger log.Logger, db dbm.DB, appOpts servertypes.AppOptions) *SimApp {
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(interfaceRegistry)
	authtypes.RegisterInterfaces(interfaceRegistry)
	banktypes.RegisterInterfaces(interfaceRegistry)
	appCodec := codec.NewProtoCodec(interfaceRegistry)

	legacyAmino := codec.NewLegacyAmino()
	std.RegisterLegacyAminoCodec(legacyAmino)
	authtypes.RegisterLegacyAminoCodec(legacyAmino)
	banktypes.RegisterLegacyAminoCodec(legacyAmino)
	ModuleBasics.RegisterLegacyAminoCodec(legacyAmino)

	keys := sdk.NewKVStoreKeys(
		authtypes.StoreKey, banktypes.StoreKey, paramstypes.StoreKey, host.StoreKey,
		transfertypes.StoreKey, feetypes.StoreKey, failurestypes.StoreKey, packetforwardtypes.StoreKey,
		ContractStoreKey,
	)
	tkeys := sdk.NewTransientStoreKeys(paramstypes.TStoreKey)

	app := &SimApp{
		logger:      logger,
		cms:         store.NewCommitMultiStore(db),
		keys:        keys,
		tkeys:       tkeys,
		appCodec:    appCodec,
		legacyAmino: legacyAmino,
	}

	for _, key := range keys {
		app.cms.MountStoreWithDB(key, sdk.StoreTypeIAVL, nil)
	}
	for _, tkey := range tkeys {
		app.cms.MountStoreWithDB(tkey, sdk.StoreTypeTransient, nil)
	}

	app.ParamsKeeper = paramskeeper.NewKeeper(appCodec, legacyAmino, keys[paramstypes.StoreKey], tkeys[paramstypes.TStoreKey])
	app.ParamsKeeper.Subspace(authtypes.ModuleName)
	app.ParamsKeeper.Subspace(banktypes.ModuleName)
	app.ParamsKeeper.Subspace(transfertypes.ModuleName)
	app.ParamsKeeper.Subspace(feetypes.ModuleName)

	app.AccountKeeper = authkeeper.NewAccountKeeper(
		appCodec, keys[authtypes.StoreKey], app.GetSubspace(authtypes.ModuleName), authtypes.ProtoBaseAccount, maccPerms,
	)
	app.BankKeeper = bankkeeper.NewBaseKeeper(
		appCodec, keys[banktypes.StoreKey], app.AccountKeeper, app.GetSubspace(banktypes.ModuleName), app.ModuleAccountAddrs(),
	)

	authority := authtypes.NewModuleAddress("gov").String()

	app.ChannelKeeper = mock.NewChannelKeeper(appCodec, keys[host.StoreKey])
	app.ContractKeeper = mock.NewContractKeeper(keys[ContractStoreKey])

	app.FailuresKeeper = failureskeeper.NewKeeper(legacyAmino, keys[failurestypes.StoreKey], authority)

	app.FeeKeeper = feekeeper.NewKeeper(
		legacyAmino, keys[feetypes.StoreKey], app.GetSubspace(feetypes.ModuleName), authority,
		app.ChannelKeeper, app.AccountKeeper, app.BankKeeper, app.ContractKeeper, app.FailuresKeeper,
	).WithCallbackGasLimit(cast.ToUint64(appOpts.Get(FlagCallbackGasLimit)))

	app.TransferKeeper = transferkeeper.NewKeeper(
		appCodec, keys[transfertypes.StoreKey], app.GetSubspace(transfertypes.ModuleName),
		app.FeeKeeper, app.ChannelKeeper, app.AccountKeeper, app.BankKeeper,
	)

	app.PacketForwardKeeper = packetforwardkeeper.NewKeeper(legacyAmino, keys[packetforwardtypes.StoreKey], app.TransferKeeper)

	var transferStack porttypes.IBCModule
	transferStack = transfer.NewIBCModule(app.TransferKeeper)
	transferStack = fee.NewIBCMiddleware(transferStack, app.FeeKeeper)
	transferStack = packetforward.NewIBCMiddleware(transferStack, app.FeeKeeper, app.PacketForwardKeeper)
	transferStack = ibchooks.NewIBCMiddleware(transferStack, app.FeeKeeper, app.ContractKeeper)
	app.IBCStack = transferStack

	app.mm = module.NewManager(
		transfer.NewAppModule(app.TransferKeeper),
		fee.NewAppModule(app.FeeKeeper),
		failures.NewAppModule(app.FailuresKeeper),
		packetforward.NewAppModule(app.PacketForwardKeeper),
	)
	app.mm.RegisterInvariants(app)

	app.router = baseapp.NewRouter()
	app.queryRouter = baseapp.NewQueryRouter()
	app.mm.RegisterRoutes(app.router, app.queryRouter, legacyAmino)

	if err := app.cms.LoadLatestVersion(); err != nil {
		panic(fmt.Sprintf("failed to load latest version: %s", err))
	}

	return app
}

// NewContext returns a context over the uncommitted state of the app
func (app *SimApp) NewContext(header tmproto.Header) sdk.Context {
	return sdk.NewContext(app.cms, header, false, app.logger)
}

// InitChain sets the auth and bank params and runs the genesis of the application modules.
func (app *SimApp) InitChain(ctx sdk.Context, genesisState map[string]json.RawMessage) {
	app.AccountKeeper.SetParams(ctx, authtypes.DefaultParams())
	app.BankKeeper.SetParams(ctx, banktypes.DefaultParams())

	app.mm.InitGenesis(ctx, app.appCodec, genesisState)
}

// ExportGenesis returns the genesis state of the application modules
func (app *SimApp) ExportGenesis(ctx sdk.Context) map[string]json.RawMessage {
	return app.mm.ExportGenesis(ctx, app.appCodec)
}

// Commit persists the state and returns the app hash
func (app *SimApp) Commit() []byte {
	return app.cms.Commit().Hash
}

// AssertInvariants runs every registered invariant and returns the first broken one
func (app *SimApp) AssertInvariants(ctx sdk.Context) error {
	for _, route := range app.invariants {
		if msg, broken := route.invariant(ctx); broken {
			return fmt.Errorf("invariant %s/%s broken: %s", route.moduleName, route.route, msg)
		}
	}

	return nil
}

// FundAccount mints coins and sends them to addr
func (app *SimApp) FundAccount(ctx sdk.Context, addr sdk.AccAddress, amounts sdk.Coins) error {
	if err := app.BankKeeper.MintCoins(ctx, FaucetAccountName, amounts); err != nil {
		return err
	}

	return app.BankKeeper.SendCoinsFromModuleToAccount(ctx, FaucetAccountName, addr, amounts)
}

// GetSubspace returns a param subspace for a given module name.
func (app *SimApp) GetSubspace(moduleName string) paramstypes.Subspace {
	subspace, _ := app.ParamsKeeper.GetSubspace(moduleName)
	return subspace
}

// ModuleAccountAddrs returns all the app's module account addresses.
func (app *SimApp) ModuleAccountAddrs() map[string]bool {
	modAccAddrs := make(map[string]bool)
	for acc := range maccPerms {
		modAccAddrs[authtypes.NewModuleAddress(acc).String()] = true
	}

	return modAccAddrs
}

// Router returns the message router of the application modules
func (app *SimApp) Router() sdk.Router {
	return app.router
}

// QueryRouter returns the legacy querier router of the application modules
func (app *SimApp) QueryRouter() sdk.QueryRouter {
	return app.queryRouter
}

// AppCodec returns the app codec
func (app *SimApp) AppCodec() codec.Codec {
	return app.appCodec
}

// LegacyAmino returns the app amino codec
func (app *SimApp) LegacyAmino() *codec.LegacyAmino {
	return app.legacyAmino
}

// DefaultGenesis returns the default genesis of the application modules
func DefaultGenesis() map[string]json.RawMessage {
	encCdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	return ModuleBasics.DefaultGenesis(encCdc)
}
