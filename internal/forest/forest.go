// Package forest evaluates trained random-forest classifier artifacts.
package forest

import (
	"fmt"
)

// Node is one node of a decision tree. Internal nodes route on a feature
// index against a threshold (<= goes left); leaf nodes carry per-class
// training sample counts and have Feature set to -1.
type Node struct {
	Counts    []float64 `json:"counts,omitempty"`
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
}

// IsLeaf reports whether the node is a leaf.
func (n Node) IsLeaf() bool {
	return n.Feature < 0
}

// Tree is a single decision tree, nodes indexed from the root at 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is a trained random-forest classifier. It is read-only after load
// and safe for concurrent use.
type Forest struct {
	Classes  []string `json:"classes"`
	Trees    []Tree   `json:"trees"`
	Features int      `json:"features"`
}

// Validate checks structural integrity of a loaded forest.
func (f *Forest) Validate() error {
	if len(f.Classes) == 0 {
		return fmt.Errorf("forest has no classes")
	}
	if f.Features <= 0 {
		return fmt.Errorf("forest has invalid feature count %d", f.Features)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("forest has no trees")
	}

	for ti, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, node := range tree.Nodes {
			if node.IsLeaf() {
				if len(node.Counts) != len(f.Classes) {
					return fmt.Errorf("tree %d leaf %d has %d class counts, want %d",
						ti, ni, len(node.Counts), len(f.Classes))
				}
				continue
			}
			if node.Feature >= f.Features {
				return fmt.Errorf("tree %d node %d routes on feature %d, model has %d",
					ti, ni, node.Feature, f.Features)
			}
			if node.Left < 0 || node.Left >= len(tree.Nodes) ||
				node.Right < 0 || node.Right >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d has out-of-range children", ti, ni)
			}
		}
	}

	return nil
}

// Describe returns a short human-readable model description for status
// reporting.
func (f *Forest) Describe() string {
	return fmt.Sprintf("RandomForestClassifier(%d trees, %d features)", len(f.Trees), f.Features)
}

// PredictLabel returns the majority-vote class for a feature vector. Ties
// resolve to the class listed first in the artifact.
func (f *Forest) PredictLabel(values []float64) (string, error) {
	proba, err := f.predictProba(values)
	if err != nil {
		return "", err
	}

	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return f.Classes[best], nil
}

// PredictConfidence returns the probability mass assigned to the given
// label, as a percentage.
func (f *Forest) PredictConfidence(values []float64, label string) (float64, error) {
	proba, err := f.predictProba(values)
	if err != nil {
		return 0, err
	}

	for i, class := range f.Classes {
		if class == label {
			return proba[i] * 100, nil
		}
	}
	return 0, fmt.Errorf("label %q is not a model class", label)
}

// predictProba averages each tree's leaf class distribution.
func (f *Forest) predictProba(values []float64) ([]float64, error) {
	if len(values) != f.Features {
		return nil, fmt.Errorf("feature vector has %d values, model expects %d", len(values), f.Features)
	}

	proba := make([]float64, len(f.Classes))
	for _, tree := range f.Trees {
		leaf := tree.walk(values)

		var total float64
		for _, count := range leaf.Counts {
			total += count
		}
		if total == 0 {
			continue
		}
		for i, count := range leaf.Counts {
			proba[i] += count / total
		}
	}

	for i := range proba {
		proba[i] /= float64(len(f.Trees))
	}
	return proba, nil
}

func (t Tree) walk(values []float64) Node {
	node := t.Nodes[0]
	for !node.IsLeaf() {
		if values[node.Feature] <= node.Threshold {
			node = t.Nodes[node.Left]
		} else {
			node = t.Nodes[node.Right]
		}
	}
	return node
}
