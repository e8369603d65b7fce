package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/meshswap/meshswap/x/venues/types"
)

// GetQueryCmd returns the cli query commands for the venues module. The
// commands read the module store directly; swaps and quotes are keeper-level
// calls made by the routing module, not node queries.
func GetQueryCmd() *cobra.Command {
	venuesQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the venues module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	venuesQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryTokenPath(),
		GetCmdQueryPairFee(),
		GetCmdQueryPoolRoute(),
		GetCmdQuerySharePool(),
	)

	return venuesQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current venues module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ParamsKey, types.StoreKey)
			if err != nil {
				return err
			}

			params := types.DefaultParams()
			if bz != nil {
				if err := json.Unmarshal(bz, &params); err != nil {
					return fmt.Errorf("failed to decode params: %w", err)
				}
			}

			out, err := json.MarshalIndent(params, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTokenPath returns the command to query a hop path
func GetCmdQueryTokenPath() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token-path [token-in] [token-out]",
		Short: "Query the hop path registered for a directional pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.TokenPathKey(args[0], args[1]), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return clientCtx.PrintString("no path registered\n")
			}

			var path types.TokenPath
			if err := json.Unmarshal(bz, &path); err != nil {
				return fmt.Errorf("failed to decode token path: %w", err)
			}
			return clientCtx.PrintString(strings.Join(path.Hops, " -> ") + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPairFee returns the command to query a fee tier
func GetCmdQueryPairFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair-fee [token-a] [token-b]",
		Short: "Query the fee tier configured for a pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.PairFeeKey(args[0], args[1]), types.StoreKey)
			if err != nil {
				return err
			}

			var fee types.PairFee
			if bz != nil {
				if err := json.Unmarshal(bz, &fee); err != nil {
					return fmt.Errorf("failed to decode pair fee: %w", err)
				}
			}
			return clientCtx.PrintString(fmt.Sprintf("%d\n", fee.FeeTier))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPoolRoute returns the command to query a pool route
func GetCmdQueryPoolRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-route [token-a] [token-b]",
		Short: "Query the vault pool mapped to a pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.PoolRouteKey(args[0], args[1]), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return clientCtx.PrintString("no route registered\n")
			}

			var route types.PoolRoute
			if err := json.Unmarshal(bz, &route); err != nil {
				return fmt.Errorf("failed to decode pool route: %w", err)
			}

			out, err := json.MarshalIndent(route, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySharePool returns the command to query the active share pool
func GetCmdQuerySharePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share-pool",
		Short: "Query the name of the active internal liquidity pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ActiveSharePoolKey, types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return clientCtx.PrintString("no share pool selected\n")
			}
			return clientCtx.PrintString(string(bz) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
