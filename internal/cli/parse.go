package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/againey/MakeIt.Tile-sub003/builder"
)

// parseBuilder turns "kind:args" into a builder constructor:
//
//	path:N  cycle:N  star:N  wheel:N  complete:N
//	grid:RxC  platonic:NAME  random:N:P
func parseBuilder(spec string) (builder.Constructor, error) {
	kind, args, _ := strings.Cut(strings.TrimSpace(spec), ":")
	fields := strings.Split(args, ":")

	single := func(fn func(int) builder.Constructor) (builder.Constructor, error) {
		if len(fields) != 1 {
			return nil, fmt.Errorf("%w: %q wants %s:N", ErrBadSpec, spec, kind)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadSpec, spec, err)
		}
		return fn(n), nil
	}

	switch strings.ToLower(kind) {
	case "path":
		return single(builder.Path)
	case "cycle":
		return single(builder.Cycle)
	case "star":
		return single(builder.Star)
	case "wheel":
		return single(builder.Wheel)
	case "complete":
		return single(builder.Complete)
	case "grid":
		r, c, ok := strings.Cut(args, "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q wants grid:RxC", ErrBadSpec, spec)
		}
		rows, err1 := strconv.Atoi(r)
		cols, err2 := strconv.Atoi(c)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q wants grid:RxC", ErrBadSpec, spec)
		}
		return builder.Grid(rows, cols), nil
	case "platonic":
		name, err := builder.ParsePlatonicName(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadSpec, spec, err)
		}
		return builder.PlatonicSolid(name), nil
	case "random":
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q wants random:N:P", ErrBadSpec, spec)
		}
		n, err1 := strconv.Atoi(fields[0])
		p, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q wants random:N:P", ErrBadSpec, spec)
		}
		return builder.RandomSparse(n, p), nil
	}
	return nil, fmt.Errorf("%w: unknown builder %q", ErrBadSpec, kind)
}

// parseWeights turns a weight spec into a builder option:
//
//	unit  const:W  uniform:MIN:MAX  normal:MEAN:STDDEV  exp:RATE
func parseWeights(spec string) (builder.BuilderOption, error) {
	kind, args, _ := strings.Cut(strings.TrimSpace(spec), ":")
	var nums []float64
	if args != "" {
		for _, f := range strings.Split(args, ":") {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: weights %q: %v", ErrBadSpec, spec, err)
			}
			nums = append(nums, v)
		}
	}

	want := map[string]int{"unit": 0, "const": 1, "uniform": 2, "normal": 2, "exp": 1}
	n, ok := want[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown weights %q", ErrBadSpec, kind)
	}
	if len(nums) != n {
		return nil, fmt.Errorf("%w: weights %q wants %d arguments", ErrBadSpec, spec, n)
	}

	switch kind {
	case "const":
		if nums[0] < 0 {
			return nil, fmt.Errorf("%w: weights %q is negative", ErrBadSpec, spec)
		}
		return builder.WithConstantWeight(nums[0]), nil
	case "uniform":
		if nums[0] < 0 || nums[1] < nums[0] {
			return nil, fmt.Errorf("%w: weights %q wants 0 <= MIN <= MAX", ErrBadSpec, spec)
		}
		return builder.WithUniformWeight(nums[0], nums[1]), nil
	case "normal":
		if nums[1] < 0 {
			return nil, fmt.Errorf("%w: weights %q has negative stddev", ErrBadSpec, spec)
		}
		return builder.WithNormalWeight(nums[0], nums[1]), nil
	case "exp":
		if nums[0] <= 0 {
			return nil, fmt.Errorf("%w: weights %q wants RATE > 0", ErrBadSpec, spec)
		}
		return builder.WithExponentialWeight(nums[0]), nil
	}
	return builder.WithConstantWeight(builder.DefaultEdgeWeight), nil
}
