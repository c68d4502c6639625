// Package debugconsole is an interactive stdin REPL for stepping a running
// computer.Computer, in the teacher's DebugConsole idiom: short one/two
// letter commands, a running cycle count, breakpoints on the program
// counter.
package debugconsole

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/jyane/hackvm/computer"
	"github.com/jyane/hackvm/gate"
)

// Console wraps a computer.Computer with debugger state: an executed-tick
// count and a set of PC breakpoints.
//
// commands:
//
//	s [n]: step n ticks (default 1)
//	p:     print PC and a RAM range
//	br N:  set a breakpoint at program counter N
//	r:     reset (hold Reset asserted for one tick)
//	q:     quit
type Console struct {
	computer    computer.Computer
	ticks       uint64
	breakpoints []gate.Bus15
}

// New builds a console around a loaded program.
func New(program []gate.Bus16) *Console {
	return &Console{computer: computer.New(program)}
}

func (c *Console) step(n int) int {
	stepped := 0
	for i := 0; i < n; i++ {
		c.computer = c.computer.Tick(false)
		c.ticks++
		stepped++
		if c.checkBreak() {
			break
		}
	}
	return stepped
}

func (c *Console) checkBreak() bool {
	pc := c.computer.PeekPC()
	for _, bp := range c.breakpoints {
		if bp == pc {
			glog.Infof("break at pc=%d", pc.Uint())
			return true
		}
	}
	return false
}

func (c *Console) printState() {
	fmt.Printf("ticks=%d pc=%d\n", c.ticks, c.computer.PeekPC().Uint())
	fmt.Print("RAM[0:8]: ")
	for addr := uint32(0); addr < 8; addr++ {
		fmt.Printf("%d ", c.computer.PeekRAM(addr).Int16())
	}
	fmt.Println()
}

func (c *Console) breakpointCommand(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: br <address>")
	}
	addr, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("br: %w", err)
	}
	c.breakpoints = append(c.breakpoints, gate.NewBus15(uint32(addr)))
	return nil
}

func (c *Console) reset() {
	c.computer = c.computer.Tick(true)
	c.ticks++
}

// Run reads commands from stdin until "q" or EOF.
func (c *Console) Run() {
	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(">> ")
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		args := strings.Fields(strings.TrimSpace(line))
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "s", "step":
			n := 1
			if len(args) > 1 {
				if v, err := strconv.Atoi(args[1]); err == nil {
					n = v
				}
			}
			stepped := c.step(n)
			c.printState()
			glog.Infof("stepped %d ticks", stepped)
		case "p", "print":
			c.printState()
		case "br", "breakpoint":
			if err := c.breakpointCommand(args); err != nil {
				fmt.Println(err)
			}
		case "r", "reset":
			c.reset()
		case "q", "quit":
			return
		default:
			glog.Warningf("unknown command %q", args[0])
		}
	}
}
