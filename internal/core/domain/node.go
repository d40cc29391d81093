package domain

import "encoding/json"

// NodeSet is an ordered list of node addresses. Duplicates are kept and
// order is significant: it becomes the order of the request body.
//
// An empty NodeSet sent with a command means "every node of the experiment";
// that expansion happens on the server.
type NodeSet []string

// Flatten concatenates node groups into one NodeSet, keeping order and
// duplicates. The result is never nil.
func Flatten(groups [][]string) NodeSet {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	nodes := make(NodeSet, 0, n)
	for _, g := range groups {
		nodes = append(nodes, g...)
	}
	return nodes
}

// Without returns the nodes of s that are not in excluded, in s order.
func (s NodeSet) Without(excluded NodeSet) NodeSet {
	skip := make(map[string]struct{}, len(excluded))
	for _, n := range excluded {
		skip[n] = struct{}{}
	}
	nodes := make(NodeSet, 0, len(s))
	for _, n := range s {
		if _, ok := skip[n]; ok {
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// MarshalJSON encodes the set as a JSON array. A nil set encodes as [] so
// that "all nodes" never goes out as null.
func (s NodeSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// ResourceItem is one node allocated to an experiment. Only the network
// address is used; other testbed fields are ignored.
type ResourceItem struct {
	NetworkAddress string `json:"network_address"`
}

// ExperimentResources is the resource listing of one experiment.
type ExperimentResources struct {
	Items []ResourceItem `json:"items"`
}

// Addresses returns the network addresses in server order.
func (r *ExperimentResources) Addresses() NodeSet {
	nodes := make(NodeSet, 0, len(r.Items))
	for _, item := range r.Items {
		nodes = append(nodes, item.NetworkAddress)
	}
	return nodes
}
