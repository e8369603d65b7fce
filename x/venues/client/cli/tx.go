package cli

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/meshswap/meshswap/x/venues/types"
)

// GetTxCmd returns the transaction commands for the venues module
func GetTxCmd() *cobra.Command {
	venuesTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Venues transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	venuesTxCmd.AddCommand(
		CmdRegisterTokenPath(),
		CmdSetPairFee(),
		CmdRegisterPoolRoute(),
		CmdSetSharePool(),
		CmdWithdrawDust(),
	)

	return venuesTxCmd
}

// CmdRegisterTokenPath returns a CLI command handler for registering a hop
// path on the multi-hop venue
func CmdRegisterTokenPath() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-token-path [token-in] [token-out] [hops]",
		Short: "Register the hop path for a directional pair",
		Long: `Register the ordered hop path the multi-hop venue uses for a directional pair.
Hops are comma-separated and must start at token-in and end at token-out.

Example:
  $ meshswapd tx venues register-token-path uusdc uweth uusdc,uatom,uweth --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			hops := strings.Split(args[2], ",")

			msg := types.NewMsgRegisterTokenPath(clientCtx.GetFromAddress().String(), args[0], args[1], hops)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetPairFee returns a CLI command handler for configuring a fee tier on
// the single-pool venue
func CmdSetPairFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-pair-fee [token-a] [token-b] [fee-tier]",
		Short: "Set the fee tier for a pair",
		Long: `Set the fee tier the single-pool venue uses for a pair. The tier applies to
both swap directions.

Example:
  $ meshswapd tx venues set-pair-fee uusdc uweth 500 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeTier, err := cast.ToUint32E(args[2])
			if err != nil {
				return fmt.Errorf("invalid fee tier: %w", err)
			}

			msg := types.NewMsgSetPairFee(clientCtx.GetFromAddress().String(), args[0], args[1], feeTier)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRegisterPoolRoute returns a CLI command handler for mapping a pair to a
// vault pool id
func CmdRegisterPoolRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-pool-route [token-a] [token-b] [pool-id]",
		Short: "Map a pair to an external vault pool",
		Long: `Map a pair to the vault pool the batch venue swaps against. The route
resolves for both swap directions.

Example:
  $ meshswapd tx venues register-pool-route uusdc uweth 0xabc123 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRegisterPoolRoute(clientCtx.GetFromAddress().String(), args[0], args[1], args[2])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetSharePool returns a CLI command handler for selecting the active
// internal liquidity pool
func CmdSetSharePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-share-pool [name]",
		Short: "Select the active internal liquidity pool",
		Long: `Select the registered internal liquidity pool the share venue mints against.

Example:
  $ meshswapd tx venues set-share-pool main --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgSetSharePool(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawDust returns a CLI command handler for the owner-only residual
// balance sweep
func CmdWithdrawDust() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-dust [token] [amount]",
		Short: "Sweep residual token balance to the owner",
		Long: `Sweep residual token balance from the module account to the owner.
Only the owner address may execute this.

Example:
  $ meshswapd tx venues withdraw-dust uusdc 1234 --from owner`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := types.NewMsgWithdrawDust(clientCtx.GetFromAddress().String(), args[0], amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
