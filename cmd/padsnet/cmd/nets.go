package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/padsnet/pkg/pads"
)

var sortNets bool

var netsCmd = &cobra.Command{
	Use:   "nets <netlist-file> [net_name]",
	Short: "Show net information",
	Long: `Display the nets of a PADS netlist.

Without net_name: Lists all nets with their pin counts
With net_name: Shows every pin connected to that net`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNets,
}

var partsCmd = &cobra.Command{
	Use:   "parts <netlist-file>",
	Short: "List the declared parts",
	Args:  cobra.ExactArgs(1),
	RunE:  runParts,
}

func init() {
	rootCmd.AddCommand(netsCmd)
	rootCmd.AddCommand(partsCmd)

	netsCmd.Flags().BoolVarP(&sortNets, "sort", "s", false, "sort nets by name")
}

func runNets(cmd *cobra.Command, args []string) error {
	nl, _, err := parseNetlist(cmd, args[0])
	if err != nil {
		return err
	}

	if len(args) == 2 {
		return showNetDetails(cmd, nl, args[1])
	}
	listAllNets(cmd, nl)
	return nil
}

func listAllNets(cmd *cobra.Command, nl *pads.Netlist) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Netlist: %d nets\n\n", len(nl.Nets))
	fmt.Fprintf(out, "%-32s %6s\n", "Net Name", "Pins")
	fmt.Fprintln(out, "───────────────────────────────────────")

	nets := nl.Nets
	if sortNets {
		nets = append([]pads.Net(nil), nl.Nets...)
		sort.Slice(nets, func(i, j int) bool { return nets[i].Name < nets[j].Name })
	}

	for _, net := range nets {
		fmt.Fprintf(out, "%-32s %6d\n", net.Name, len(net.Pins))
	}
}

func showNetDetails(cmd *cobra.Command, nl *pads.Netlist, netName string) error {
	net, ok := nl.Net(netName)
	if !ok {
		return fmt.Errorf("net '%s' not found", netName)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Net: %s\n\n", net.Name)
	fmt.Fprintf(out, "Pins (%d):\n", len(net.Pins))
	for _, pin := range net.Pins {
		footprint := "?"
		if part, ok := nl.Part(pin.RefDes); ok {
			footprint = part.Footprint
		}
		fmt.Fprintf(out, "  %-16s %s\n", pin, footprint)
	}
	return nil
}

func runParts(cmd *cobra.Command, args []string) error {
	nl, _, err := parseNetlist(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Netlist: %d parts\n\n", len(nl.Parts))
	fmt.Fprintf(out, "%-10s %-32s %s\n", "RefDes", "Footprint", "Value")
	fmt.Fprintln(out, strings.Repeat("─", 60))
	for _, part := range nl.Parts {
		fmt.Fprintf(out, "%-10s %-32s %s\n", part.RefDes, part.Footprint, part.Value)
	}
	return nil
}
