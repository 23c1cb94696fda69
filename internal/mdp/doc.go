// Package mdp holds the value types shared by everything that produces or
// consumes a finite Markov decision process model.
//
//   - [Space]: ordered set of integer states or actions
//   - [Pair]: a (state, action) key
//   - [Outcome]: a (next state, reward) key
//   - [Dynamics]: Pair -> Outcome -> probability
//
// A [Dynamics] value is built once and treated as read-only afterwards. It
// is safe for concurrent readers.
package mdp
