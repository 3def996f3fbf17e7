// Command satsolver reads a DIMACS CNF file and reports SAT/UNSAT/UNKNOWN.
//
// The teacher's cmd/saturday/main.go parsed flags with the stdlib flag
// package and drove a CDCL solver directly. This entry point is built on
// urfave/cli instead, following the pattern in togatoga-gatosat's main.go
// (a cli.App with a flag slice, an Action that validates its arguments and
// then runs the solve-and-report flow, and a SIGINT/SIGTERM handler; here the
// handler prints "s UNKNOWN" and exits, without printing statistics) — a
// different library for the same job the teacher's flag.Parse and flagUsage
// glue did.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/Phenriquess25/SatSolver/config"
	"github.com/Phenriquess25/SatSolver/internal/dimacs"
	"github.com/Phenriquess25/SatSolver/order"
	"github.com/Phenriquess25/SatSolver/solver"
)

func main() {
	app := cli.NewApp()
	app.Name = "satsolver"
	app.Usage = "a DPLL SAT solver for DIMACS CNF input"
	app.ArgsUsage = "<file.cnf>"
	app.Flags = flags()

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "enable progress logging",
		},
		cli.BoolFlag{
			Name:  "assignment, a",
			Usage: "print the decoded model in human form when SAT",
		},
		cli.BoolFlag{
			Name:  "stats, s",
			Usage: "print decisions, propagations, conflicts, restarts, elapsed time",
		},
		cli.IntFlag{
			Name:  "timeout, t",
			Usage: "wall-clock deadline in seconds; 0 means none",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "decisions, d",
			Usage: "decision budget; 0 means none",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "strategy",
			Usage: "decision heuristic: first, frequent, jw, random",
			Value: "jw",
		},
	}
}

// exit codes, per the output contract: SAT, UNSAT, UNKNOWN, error.
const (
	exitSAT     = 10
	exitUNSAT   = 20
	exitUnknown = 0
	exitError   = 1
)

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelpAndExit(c, exitError)
	}
	path := c.Args().Get(0)

	strategy := order.Name(c.String("strategy"))
	if _, err := order.New(strategy, nil); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	formula, err := dimacs.Parse(f, dimacs.Lenient)
	if err != nil {
		return err
	}

	cfg := config.New()
	cfg.Strategy = strategy
	cfg.Verbose = c.Bool("verbose")
	if cfg.Verbose {
		cfg.Logger = log.New(os.Stderr, "satsolver: ", log.Ltime)
	}
	if t := c.Int("timeout"); t > 0 {
		cfg.Deadline = time.Duration(t) * time.Second
	}
	cfg.DecisionBudget = c.Int("decisions")

	s, err := solver.New(formula, cfg)
	if err != nil {
		return err
	}

	installSignalHandler()

	res := s.Solve()
	report(res, c.Bool("assignment"), c.Bool("stats"))
	os.Exit(exitCode(res.Status))
	return nil
}

func exitCode(status solver.Status) int {
	switch status {
	case solver.StatusSAT:
		return exitSAT
	case solver.StatusUNSAT:
		return exitUNSAT
	default:
		return exitUnknown
	}
}

func report(res solver.Result, printAssignment, printStats bool) {
	fmt.Printf("s %s\n", res.Status)
	if res.Status == solver.StatusSAT && printAssignment {
		for _, lit := range res.Model {
			bit := 0
			if lit > 0 {
				bit = 1
			}
			v := lit
			if v < 0 {
				v = -v
			}
			fmt.Printf("%d = %d\n", v, bit)
		}
	}
	if printStats {
		st := res.Stats
		fmt.Fprintf(os.Stderr, "decisions:    %d\n", st.Decisions)
		fmt.Fprintf(os.Stderr, "propagations: %d\n", st.Propagations)
		fmt.Fprintf(os.Stderr, "eliminations: %d\n", st.Eliminations)
		fmt.Fprintf(os.Stderr, "conflicts:    %d\n", st.Conflicts)
		fmt.Fprintf(os.Stderr, "backtracks:   %d\n", st.Backtracks)
		fmt.Fprintf(os.Stderr, "restarts:     %d\n", st.Restarts)
		fmt.Fprintf(os.Stderr, "elapsed:      %s\n", st.Elapsed)
	}
}

// installSignalHandler reports UNKNOWN and exits cleanly on SIGINT/SIGTERM
// rather than leaving the process to be killed mid-write.
func installSignalHandler() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("s UNKNOWN")
		os.Exit(exitUnknown)
	}()
}
