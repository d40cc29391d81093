package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeDomain is the DNS suffix of testbed node addresses.
const NodeDomain = "iot-lab.info"

// MaxRangeSize bounds the number of ids a single "a-b" range may expand to.
const MaxRangeSize = 4096

// ParseNodeList expands a node list specification into node addresses.
//
// The accepted form is "site,archi,ids", where ids is a '+' separated list
// of ids or inclusive "a-b" ranges:
//
//	grenoble,m3,1-3+7 -> m3-1.grenoble.iot-lab.info ... m3-7.grenoble.iot-lab.info
//
// A specification without commas is taken as a single literal address.
func ParseNodeList(spec string) ([]string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrInvalidNodeList.WithDetails("empty specification")
	}
	if !strings.Contains(spec, ",") {
		return []string{spec}, nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return nil, ErrInvalidNodeList.WithDetails(fmt.Sprintf("%q: want site,archi,ids", spec))
	}
	site, archi := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if site == "" || archi == "" {
		return nil, ErrInvalidNodeList.WithDetails(fmt.Sprintf("%q: empty site or archi", spec))
	}

	ids, err := ParseIDList(parts[2])
	if err != nil {
		return nil, err
	}

	nodes := make([]string, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, fmt.Sprintf("%s-%d.%s.%s", archi, id, site, NodeDomain))
	}
	return nodes, nil
}

// ParseIDList expands "1-3+7" into [1 2 3 7]. Order follows the input.
func ParseIDList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidNodeList.WithDetails("empty id list")
	}

	var ids []int
	for _, tok := range strings.Split(s, "+") {
		lo, hi, isRange := strings.Cut(tok, "-")
		first, err := parseID(lo)
		if err != nil {
			return nil, err
		}
		if !isRange {
			ids = append(ids, first)
			continue
		}
		last, err := parseID(hi)
		if err != nil {
			return nil, err
		}
		if last < first {
			return nil, ErrInvalidNodeList.WithDetails(fmt.Sprintf("decreasing range %q", tok))
		}
		if last-first >= MaxRangeSize {
			return nil, ErrInvalidNodeList.WithDetails(fmt.Sprintf("range %q exceeds %d ids", tok, MaxRangeSize))
		}
		for id := first; ; id++ {
			ids = append(ids, id)
			if id == last {
				break
			}
		}
	}
	return ids, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 0 {
		return 0, ErrInvalidNodeList.WithDetails(fmt.Sprintf("invalid node id %q", s))
	}
	return id, nil
}
