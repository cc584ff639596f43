// Package entities serves every admin list screen through one generic
// Resource: the current view, stateless queries, expansion, and the
// create/edit/delete handlers behind the modal forms.
package entities

import (
	"net/http"
	"strconv"

	"github.com/5w1tchy/nexus-admin/internal/api/apperr"
	"github.com/5w1tchy/nexus-admin/internal/api/httpx"
	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/listctl"
)

// Auditor receives one event per applied mutation.
type Auditor interface {
	Record(actor, action, targetID string, meta map[string]any)
}

// FormRecorder counts modal outcomes.
type FormRecorder interface {
	RecordForm(entity, outcome string)
}

// Mounter is a Resource with its type parameters erased.
type Mounter interface {
	Name() string
	Mount(mux *http.ServeMux, prefix string)
}

type Resource[T, In any] struct {
	Ctl      *listctl.Controller[T]
	Form     form.Modal[T, In]
	Detail   func(T) any // expanded panel; nil returns the item alone
	ReadOnly bool

	Actor string
	Audit Auditor
	Forms FormRecorder
}

type viewPatch struct {
	Term      *string `json:"term"`
	PageIndex *int    `json:"page_index"`
	PageSize  *int    `json:"page_size"`
}

type itemResponse[T any] struct {
	Item     T    `json:"item"`
	Detail   any  `json:"detail,omitempty"`
	Expanded bool `json:"expanded"`
}

type mutationResponse[T any] struct {
	Outcome string `json:"outcome"`
	Item    *T     `json:"item,omitempty"`
}

type toggleResponse struct {
	ExpandedID *int64 `json:"expanded_id"`
}

func (res *Resource[T, In]) Name() string { return res.Ctl.Name() }

func (res *Resource[T, In]) Mount(mux *http.ServeMux, prefix string) {
	base := prefix + "/" + res.Ctl.Name()
	mux.HandleFunc("GET "+base, res.list)
	mux.HandleFunc("PATCH "+base+"/view", res.patchView)
	mux.HandleFunc("GET "+base+"/{id}", res.get)
	mux.HandleFunc("POST "+base+"/{id}/toggle", res.toggle)
	if res.ReadOnly {
		return
	}
	mux.HandleFunc("POST "+base, res.create)
	mux.HandleFunc("PUT "+base+"/{id}", res.update)
	mux.HandleFunc("DELETE "+base+"/{id}", res.delete)
}

// GET /admin/{entity}: the stored view, or a stateless one when any of
// q, page or size is given.
func (res *Resource[T, In]) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("q") && !q.Has("page") && !q.Has("size") {
		httpx.OK(w, res.Ctl.View())
		return
	}
	page, err := httpx.QueryInt(r, "page", 0)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	size, err := httpx.QueryInt(r, "size", res.Ctl.PageSizes()[0])
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	v, err := res.Ctl.Query(q.Get("q"), page, size)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	httpx.OK(w, v)
}

// PATCH /admin/{entity}/view. A new term resets the page index unless the
// same request sets one.
func (res *Resource[T, In]) patchView(w http.ResponseWriter, r *http.Request) {
	var in viewPatch
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	if in.PageIndex != nil || in.PageSize != nil {
		index, size := res.Ctl.Page()
		if in.Term != nil {
			index = 0
		}
		if in.PageIndex != nil {
			index = *in.PageIndex
		}
		if in.PageSize != nil {
			size = *in.PageSize
		}
		// validate before touching the term so a bad page leaves state alone
		if _, err := res.Ctl.Query("", index, size); err != nil {
			apperr.WriteError(w, r, err)
			return
		}
		if in.Term != nil {
			res.Ctl.SetTerm(*in.Term)
		}
		if err := res.Ctl.SetPage(index, size); err != nil {
			apperr.WriteError(w, r, err)
			return
		}
	} else if in.Term != nil {
		res.Ctl.SetTerm(*in.Term)
	}
	httpx.OK(w, res.Ctl.View())
}

func (res *Resource[T, In]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid id")
		return
	}
	item, found := res.Ctl.Get(id)
	if !found {
		apperr.WriteError(w, r, listctl.ErrNotFound)
		return
	}
	out := itemResponse[T]{Item: item}
	if res.Detail != nil {
		out.Detail = res.Detail(item)
	}
	if cur, open := res.Ctl.Expanded(); open && cur == id {
		out.Expanded = true
	}
	httpx.OK(w, out)
}

func (res *Resource[T, In]) toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid id")
		return
	}
	var out toggleResponse
	if cur, open := res.Ctl.Toggle(id); open {
		out.ExpandedID = &cur
	}
	httpx.OK(w, out)
}

func (res *Resource[T, In]) create(w http.ResponseWriter, r *http.Request) {
	var in In
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	result, err := res.Form.Submit(r.Context(), nil, in)
	res.finish(w, r, result, err)
}

func (res *Resource[T, In]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid id")
		return
	}
	original, found := res.Ctl.Get(id)
	if !found {
		apperr.WriteError(w, r, listctl.ErrNotFound)
		return
	}
	var in In
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	result, err := res.Form.Submit(r.Context(), &original, in)
	res.finish(w, r, result, err)
}

// finish applies a modal result to the list and reports it.
func (res *Resource[T, In]) finish(w http.ResponseWriter, r *http.Request, result form.Result[T], err error) {
	if err != nil {
		res.countForm("rejected")
		apperr.WriteError(w, r, err)
		return
	}
	item, applied, err := res.Ctl.Apply(result)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	outcome := result.Outcome.String()
	res.countForm(outcome)
	if !applied {
		httpx.OK(w, mutationResponse[T]{Outcome: outcome})
		return
	}

	op := "update"
	if result.Outcome == form.Created {
		op = "create"
	}
	res.audit(op, res.Ctl.Name(), item)
	if result.Outcome == form.Created {
		httpx.Created(w, mutationResponse[T]{Outcome: outcome, Item: &item})
		return
	}
	httpx.OK(w, mutationResponse[T]{Outcome: outcome, Item: &item})
}

func (res *Resource[T, In]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid id")
		return
	}
	if err := res.Ctl.Delete(id); err != nil {
		apperr.WriteError(w, r, err)
		return
	}
	if res.Audit != nil {
		res.Audit.Record(res.Actor, res.Ctl.Name()+".delete", strconv.FormatInt(id, 10), nil)
	}
	httpx.OKNoData(w)
}

func (res *Resource[T, In]) audit(op, entity string, item T) {
	if res.Audit == nil {
		return
	}
	id := strconv.FormatInt(res.Ctl.IDOf(item), 10)
	res.Audit.Record(res.Actor, entity+"."+op, id, nil)
}

func (res *Resource[T, In]) countForm(outcome string) {
	if res.Forms != nil {
		res.Forms.RecordForm(res.Ctl.Name(), outcome)
	}
}
