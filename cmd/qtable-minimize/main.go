// Command qtable-minimize compresses an empirically derived state→action
// table into a minimal equivalent Moore machine.
//
// It reads an experience file of Q-learning transitions, builds a machine
// whose per-state output is the action with the highest q-value, completes
// missing outputs and transitions with a placeholder, minimizes, and reports
// the state counts. With -save the minimized machine is written as a
// Graphviz DOT graph.
//
// Experience file format (YAML):
//
//	samples:
//	  - state: "s0"
//	    action: 1
//	    next: "s1"
//	    q: [0.1, 0.9]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cipollone/minimoore"
)

// placeholderAction marks states whose optimal action was never observed,
// including the sink added to make the machine total.
const placeholderAction = -1

type experience struct {
	Samples []sample `yaml:"samples"`
}

type sample struct {
	State  string    `yaml:"state"`
	Action int       `yaml:"action"`
	Next   string    `yaml:"next"`
	Q      []float64 `yaml:"q"`
}

func main() {
	savePath := flag.String("save", "", "write the minimized machine as Graphviz DOT to this path")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: qtable-minimize [-save out.dot] experience.yaml")
	}

	machine, err := buildMachine(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	minimized, err := machine.Minimize()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("original machine has %d states\n", machine.NumStates())
	fmt.Printf("minimized machine has %d states\n", minimized.NumStates())

	if *savePath != "" {
		if err := minimoore.SaveGraphviz(minimized, *savePath); err != nil {
			log.Fatal(err)
		}
	}
}

func buildMachine(path string) (*minimoore.MooreMachine[int, int], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var exp experience
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(exp.Samples) == 0 {
		return nil, fmt.Errorf("%s: experience has no samples", path)
	}

	// Optimal action per state is the argmax over its q-values.
	best := make(map[string]int)
	for _, s := range exp.Samples {
		best[s.State] = argmax(s.Q)
	}

	b := minimoore.NewBuilder[int, int]()
	for _, s := range exp.Samples {
		b.State(s.State).Output(best[s.State]).To(s.Action, s.Next)
	}
	// The first observed state is as good an initial state as any.
	b.State(exp.Samples[0].State).Init()

	machine := b.Machine()
	machine.CompleteOutputs(placeholderAction)
	machine.CompleteSink(placeholderAction)
	return machine, nil
}

func argmax(q []float64) int {
	if len(q) == 0 {
		return placeholderAction
	}
	best := 0
	for i, v := range q {
		if v > q[best] {
			best = i
		}
	}
	return best
}
