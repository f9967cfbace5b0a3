// Package minimoore builds deterministic Moore machines, reduces them to the
// unique smallest machine computing the same input→output mapping, and decides
// whether two machines compute identical mappings.
//
// A Moore machine attaches an output symbol to each state. Machines are built
// incrementally with MooreMachine (or the named-state Builder), optionally made
// total with CompleteOutputs and CompleteSink, and then minimized with Minimize
// or compared with IsEquivalent. Minimization is Hopcroft-style partition
// refinement; equivalence is a greatest-fixpoint bisimulation test. Both sit on
// the generic fixpoint solver in this package, which is usable on its own.
//
// State ids are dense integers assigned sequentially from 0. Input and output
// alphabets are derived: a symbol belongs to an alphabet once it has been used
// in a transition or an output assignment.
package minimoore
