// Command hackvm assembles and runs Hack programs: a thin cobra CLI over
// the asm and computer packages.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/jyane/hackvm/asm"
	"github.com/jyane/hackvm/computer"
	"github.com/jyane/hackvm/internal/debugconsole"
)

func main() {
	defer glog.Flush()

	rootCmd := &cobra.Command{
		Use:   "hackvm",
		Short: "Assemble and run programs on the Hack computer",
	}

	var ticks int
	var predefined bool
	var interactive bool

	runCmd := &cobra.Command{
		Use:   "run [program.asm]",
		Short: "Assemble and execute a program, printing RAM[0:8] at the end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var opts []asm.Option
			if predefined {
				opts = append(opts, asm.WithPredefinedSymbols())
			}
			words, err := asm.Assemble(string(source), opts...)
			if err != nil {
				return err
			}
			glog.Infof("assembled %s: %d words", args[0], len(words))

			if interactive {
				debugconsole.New(words).Run()
				return nil
			}

			c := computer.New(words).Run(ticks)
			for addr := uint32(0); addr < 8; addr++ {
				fmt.Printf("RAM[%d] = %d\n", addr, c.PeekRAM(addr).Int16())
			}
			return nil
		},
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 1000, "number of clock ticks to run")
	runCmd.Flags().BoolVar(&predefined, "predefined-symbols", false, "pre-seed SP/LCL/ARG/THIS/THAT/R0-R15/SCREEN/KBD")
	runCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "drop into the step debugger instead of running to completion")

	asmCmd := &cobra.Command{
		Use:   "asm [program.asm] [out.hack]",
		Short: "Assemble a program to a text file of 16-bit binary words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var opts []asm.Option
			if predefined {
				opts = append(opts, asm.WithPredefinedSymbols())
			}
			words, err := asm.Assemble(string(source), opts...)
			if err != nil {
				return err
			}
			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()
			for _, w := range words {
				for _, bit := range w {
					if bit.Bool() {
						fmt.Fprint(out, "1")
					} else {
						fmt.Fprint(out, "0")
					}
				}
				fmt.Fprintln(out)
			}
			glog.Infof("wrote %d words to %s", len(words), args[1])
			return nil
		},
	}
	asmCmd.Flags().BoolVar(&predefined, "predefined-symbols", false, "pre-seed SP/LCL/ARG/THIS/THAT/R0-R15/SCREEN/KBD")

	rootCmd.AddCommand(runCmd, asmCmd)
	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("%v", err)
		os.Exit(1)
	}
}
