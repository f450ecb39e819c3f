package memory

import (
	"context"
	"sort"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
)

type associationRepository struct {
	s   *Store
	rel repositories.Relation
}

func (r *associationRepository) Relation() repositories.Relation {
	return r.rel
}

func (r *associationRepository) pairs(st *state) map[pair]struct{} {
	return st.joins[r.rel.Table]
}

func sortIDs(ids []int64) []int64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *associationRepository) Forward(ctx context.Context, left int64) (ids []int64, err error) {
	err = r.s.read(ctx, func(st *state) error {
		ids = []int64{}
		for p := range r.pairs(st) {
			if p.left == left {
				ids = append(ids, p.right)
			}
		}
		sortIDs(ids)
		return nil
	})
	return ids, err
}

func (r *associationRepository) Reverse(ctx context.Context, right int64) (ids []int64, err error) {
	err = r.s.read(ctx, func(st *state) error {
		ids = []int64{}
		for p := range r.pairs(st) {
			if p.right == right {
				ids = append(ids, p.left)
			}
		}
		sortIDs(ids)
		return nil
	})
	return ids, err
}

func (r *associationRepository) ForwardMany(ctx context.Context, lefts []int64) (map[int64][]int64, error) {
	return r.many(ctx, lefts, func(p pair) (int64, int64) { return p.left, p.right })
}

func (r *associationRepository) ReverseMany(ctx context.Context, rights []int64) (map[int64][]int64, error) {
	return r.many(ctx, rights, func(p pair) (int64, int64) { return p.right, p.left })
}

func (r *associationRepository) many(ctx context.Context, keys []int64, split func(pair) (key, val int64)) (out map[int64][]int64, err error) {
	wanted := make(map[int64]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	err = r.s.read(ctx, func(st *state) error {
		out = make(map[int64][]int64, len(keys))
		for p := range r.pairs(st) {
			key, val := split(p)
			if _, ok := wanted[key]; ok {
				out[key] = append(out[key], val)
			}
		}
		for k := range out {
			sortIDs(out[k])
		}
		return nil
	})
	return out, err
}

// linkable checks both ends of a pair
func (r *associationRepository) linkable(st *state, left, right int64) error {
	if !st.exists(r.rel.Left.Table, left) {
		return r.rel.Left.NotFound
	}
	if !st.exists(r.rel.Right.Table, right) {
		return r.rel.Right.NotFound
	}
	return nil
}

func (r *associationRepository) Link(ctx context.Context, left, right int64) error {
	return r.s.write(ctx, func(st *state) error {
		if err := r.linkable(st, left, right); err != nil {
			return err
		}
		r.pairs(st)[pair{left: left, right: right}] = struct{}{}
		return nil
	})
}

func (r *associationRepository) Unlink(ctx context.Context, left, right int64) error {
	return r.s.write(ctx, func(st *state) error {
		delete(r.pairs(st), pair{left: left, right: right})
		return nil
	})
}

func (r *associationRepository) ReplaceForward(ctx context.Context, left int64, rights []int64) error {
	return r.replace(ctx, rights, func(p pair) bool { return p.left == left }, func(v int64) pair {
		return pair{left: left, right: v}
	})
}

func (r *associationRepository) ReplaceReverse(ctx context.Context, right int64, lefts []int64) error {
	return r.replace(ctx, lefts, func(p pair) bool { return p.right == right }, func(v int64) pair {
		return pair{left: v, right: right}
	})
}

// replace validates every new pair before touching the set, so a failure leaves it unchanged
func (r *associationRepository) replace(ctx context.Context, vals []int64, owned func(pair) bool, build func(int64) pair) error {
	return r.s.write(ctx, func(st *state) error {
		next := make([]pair, 0, len(vals))
		for _, v := range models.Dedupe(vals) {
			p := build(v)
			if err := r.linkable(st, p.left, p.right); err != nil {
				return err
			}
			next = append(next, p)
		}

		pairs := r.pairs(st)
		for p := range pairs {
			if owned(p) {
				delete(pairs, p)
			}
		}
		for _, p := range next {
			pairs[p] = struct{}{}
		}
		return nil
	})
}
