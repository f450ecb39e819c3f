package memory

import (
	"context"
	"sort"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

// sortedValues returns the values of m ordered by less
func sortedValues[T any](m map[int64]*T, less func(a, b *T) bool) []*T {
	out := make([]*T, 0, len(m))
	for _, v := range m {
		c := *v
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// lookup returns a copy of m[id]
func lookup[T any](m map[int64]*T, id int64, notFound error) (*T, error) {
	v, ok := m[id]
	if !ok {
		return nil, notFound
	}
	c := *v
	return &c, nil
}

// replaceWith stores a patched copy of m[id]. The old value is left alone
// since other states may still share it.
func replaceWith[T any](m map[int64]*T, id int64, notFound error, apply func(*T)) error {
	v, ok := m[id]
	if !ok {
		return notFound
	}
	c := *v
	apply(&c)
	m[id] = &c
	return nil
}

type topicRepository struct{ s *Store }

func (r *topicRepository) Create(ctx context.Context, t *models.Topic) error {
	return r.s.write(ctx, func(st *state) error {
		stored := *t
		stored.ID = st.newID("topics")
		stored.CreatedAt = r.s.now()
		stored.OffCampus = stored.OffCampus.Normalize()
		stored.Misc = stored.Misc.OrEmpty()
		stored.CourseIDs, stored.ClubIDs, stored.ProfessorIDs = nil, nil, nil
		st.topics[stored.ID] = &stored

		t.ID, t.CreatedAt = stored.ID, stored.CreatedAt
		return nil
	})
}

func (r *topicRepository) GetByID(ctx context.Context, id int64) (t *models.Topic, err error) {
	err = r.s.read(ctx, func(st *state) error {
		t, err = lookup(st.topics, id, apperrors.ErrTopicNotFound)
		return err
	})
	return t, err
}

func (r *topicRepository) List(ctx context.Context) (out []*models.Topic, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedValues(st.topics, func(a, b *models.Topic) bool { return a.ID < b.ID })
		return nil
	})
	return out, err
}

func (r *topicRepository) Update(ctx context.Context, id int64, patch models.TopicPatch) error {
	return r.s.write(ctx, func(st *state) error {
		return replaceWith(st.topics, id, apperrors.ErrTopicNotFound, func(t *models.Topic) { patch.Apply(t) })
	})
}

func (r *topicRepository) Count(ctx context.Context) (n int, err error) {
	err = r.s.read(ctx, func(st *state) error {
		n = len(st.topics)
		return nil
	})
	return n, err
}

type courseRepository struct{ s *Store }

func (r *courseRepository) Create(ctx context.Context, c *models.Course) error {
	return r.s.write(ctx, func(st *state) error {
		stored := *c
		stored.ID = st.newID("courses")
		stored.CreatedAt = r.s.now()
		stored.Attributes = models.Dedupe(stored.Attributes)
		stored.CategoryTag = models.Dedupe(stored.CategoryTag)
		stored.Misc = stored.Misc.OrEmpty()
		stored.TopicIDs, stored.PrereqIDs, stored.PastProfessorIDs = nil, nil, nil
		st.courses[stored.ID] = &stored

		c.ID, c.CreatedAt = stored.ID, stored.CreatedAt
		return nil
	})
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (c *models.Course, err error) {
	err = r.s.read(ctx, func(st *state) error {
		c, err = lookup(st.courses, id, apperrors.ErrCourseNotFound)
		return err
	})
	return c, err
}

func (r *courseRepository) List(ctx context.Context) (out []*models.Course, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedValues(st.courses, func(a, b *models.Course) bool {
			if a.CourseProgram != b.CourseProgram {
				return a.CourseProgram < b.CourseProgram
			}
			if a.CourseCode != b.CourseCode {
				return a.CourseCode < b.CourseCode
			}
			return a.ID < b.ID
		})
		return nil
	})
	return out, err
}

func (r *courseRepository) Update(ctx context.Context, id int64, patch models.CoursePatch) error {
	return r.s.write(ctx, func(st *state) error {
		return replaceWith(st.courses, id, apperrors.ErrCourseNotFound, func(c *models.Course) { patch.Apply(c) })
	})
}

type professorRepository struct{ s *Store }

func (r *professorRepository) Create(ctx context.Context, p *models.Professor) error {
	return r.s.write(ctx, func(st *state) error {
		stored := *p
		stored.ID = st.newID("professors")
		stored.CreatedAt = r.s.now()
		stored.Misc = stored.Misc.OrEmpty()
		stored.CourseIDs, stored.TopicIDs = nil, nil
		st.professors[stored.ID] = &stored

		p.ID, p.CreatedAt = stored.ID, stored.CreatedAt
		return nil
	})
}

func (r *professorRepository) GetByID(ctx context.Context, id int64) (p *models.Professor, err error) {
	err = r.s.read(ctx, func(st *state) error {
		p, err = lookup(st.professors, id, apperrors.ErrProfessorNotFound)
		return err
	})
	return p, err
}

func (r *professorRepository) List(ctx context.Context) (out []*models.Professor, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedValues(st.professors, func(a, b *models.Professor) bool {
			if a.FullName != b.FullName {
				return a.FullName < b.FullName
			}
			return a.ID < b.ID
		})
		return nil
	})
	return out, err
}

func (r *professorRepository) Update(ctx context.Context, id int64, patch models.ProfessorPatch) error {
	return r.s.write(ctx, func(st *state) error {
		return replaceWith(st.professors, id, apperrors.ErrProfessorNotFound, func(p *models.Professor) { patch.Apply(p) })
	})
}

type clubRepository struct{ s *Store }

func (r *clubRepository) Create(ctx context.Context, c *models.Club) error {
	return r.s.write(ctx, func(st *state) error {
		stored := *c
		stored.ID = st.newID("clubs")
		stored.CreatedAt = r.s.now()
		stored.Level = models.Strings(stored.Level)
		stored.Tags = models.Dedupe(stored.Tags)
		stored.Misc = stored.Misc.OrEmpty()
		stored.TopicIDs = nil
		st.clubs[stored.ID] = &stored

		c.ID, c.CreatedAt = stored.ID, stored.CreatedAt
		return nil
	})
}

func (r *clubRepository) GetByID(ctx context.Context, id int64) (c *models.Club, err error) {
	err = r.s.read(ctx, func(st *state) error {
		c, err = lookup(st.clubs, id, apperrors.ErrClubNotFound)
		return err
	})
	return c, err
}

func (r *clubRepository) List(ctx context.Context) (out []*models.Club, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedValues(st.clubs, func(a, b *models.Club) bool {
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return a.ID < b.ID
		})
		return nil
	})
	return out, err
}

func (r *clubRepository) Update(ctx context.Context, id int64, patch models.ClubPatch) error {
	return r.s.write(ctx, func(st *state) error {
		return replaceWith(st.clubs, id, apperrors.ErrClubNotFound, func(c *models.Club) { patch.Apply(c) })
	})
}

type resourceRepository struct{ s *Store }

func (r *resourceRepository) Create(ctx context.Context, res *models.Resource) error {
	return r.s.write(ctx, func(st *state) error {
		stored := *res
		stored.ID = st.newID(res.Kind.Table())
		stored.CreatedAt = r.s.now()
		stored.Tags = models.Dedupe(stored.Tags)
		stored.Misc = stored.Misc.OrEmpty()
		st.resources[res.Kind][stored.ID] = &stored

		res.ID, res.CreatedAt = stored.ID, stored.CreatedAt
		return nil
	})
}

func (r *resourceRepository) GetByID(ctx context.Context, kind models.ResourceKind, id int64) (res *models.Resource, err error) {
	err = r.s.read(ctx, func(st *state) error {
		res, err = lookup(st.resources[kind], id, repositories.ResourceNotFound(kind))
		return err
	})
	return res, err
}

func (r *resourceRepository) List(ctx context.Context, kind models.ResourceKind) (out []*models.Resource, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedValues(st.resources[kind], func(a, b *models.Resource) bool { return a.ID < b.ID })
		return nil
	})
	return out, err
}

func (r *resourceRepository) Update(ctx context.Context, kind models.ResourceKind, id int64, patch models.ResourcePatch) error {
	return r.s.write(ctx, func(st *state) error {
		return replaceWith(st.resources[kind], id, repositories.ResourceNotFound(kind), func(res *models.Resource) { patch.Apply(res) })
	})
}
