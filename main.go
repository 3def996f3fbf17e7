package main

import (
	"fmt"

	"github.com/Phenriquess25/SatSolver/config"
	"github.com/Phenriquess25/SatSolver/formula"
	"github.com/Phenriquess25/SatSolver/lit"
	"github.com/Phenriquess25/SatSolver/solver"
)

func main() {
	printBanner()

	f := formula.New(5)
	f.AddClause([]lit.Lit{lit.FromInt(-1), lit.FromInt(-3), lit.FromInt(5)})
	f.AddClause([]lit.Lit{lit.FromInt(-1), lit.FromInt(-3), lit.FromInt(-5)})

	s, err := solver.New(f, config.New())
	if err != nil {
		fmt.Println(err)
		return
	}

	res := s.Solve()
	fmt.Printf("\n%s\n", res.Status)
	if res.Status == solver.StatusSAT {
		for v, val := range res.Model {
			fmt.Printf("%d = %t\n", v+1, val > 0)
		}
	}
}

func printBanner() {
	fmt.Println("SatSolver — a DPLL SAT solver library")
	fmt.Println("")
}
