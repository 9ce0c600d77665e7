package devserver

import (
	"net/http"
	"time"

	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/gorilla/mux"
)

// ── projects ─────────────────────────────────────────────────────────────────

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	s.mu.Lock()
	out := make([]domain.Project, 0)
	for _, p := range s.projects {
		if s.owners[p.ID] == userID {
			out = append(out, p)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateProjectRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	p := domain.Project{ID: newID(), Name: req.Name}
	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.owners[p.ID] = userIDFrom(r.Context())
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, p)
}

// ownsProject must be called with s.mu held.
func (s *Server) ownsProject(userID, projectID string) bool {
	owner, ok := s.owners[projectID]
	return ok && owner == userID
}

// timelineItemIn must be called with s.mu held.
func (s *Server) timelineItemIn(projectID, itemID string) bool {
	for _, t := range s.timeline {
		if t.ID == itemID && t.ProjectID == projectID {
			return true
		}
	}
	return false
}

// scopedList answers a GET on a project-scoped collection. pick copies the
// matching rows out while the lock is held.
func (s *Server) scopedList(w http.ResponseWriter, r *http.Request, pick func(projectID string) any) {
	projectID := mux.Vars(r)["projectID"]
	userID := userIDFrom(r.Context())

	s.mu.Lock()
	if !s.ownsProject(userID, projectID) {
		s.mu.Unlock()
		writeDetail(w, http.StatusNotFound, "Project not found")
		return
	}
	out := pick(projectID)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

// ── metrics ──────────────────────────────────────────────────────────────────

func (s *Server) handleListMetrics(w http.ResponseWriter, r *http.Request) {
	s.scopedList(w, r, func(projectID string) any {
		out := make([]domain.Metric, 0)
		for _, m := range s.metrics {
			if m.ProjectID == projectID {
				out = append(out, m)
			}
		}
		return out
	})
}

func (s *Server) handleCreateMetric(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateMetricRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	m := domain.Metric{
		ID:           newID(),
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Description:  req.Description,
		CurrentValue: req.CurrentValue,
		TargetValue:  req.TargetValue,
		Unit:         req.Unit,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsProject(userIDFrom(r.Context()), req.ProjectID) {
		writeDetail(w, http.StatusNotFound, "Project not found")
		return
	}
	s.metrics = append(s.metrics, m)
	writeJSON(w, http.StatusOK, m)
}

// ── actions ──────────────────────────────────────────────────────────────────

func (s *Server) handleListActions(w http.ResponseWriter, r *http.Request) {
	s.scopedList(w, r, func(projectID string) any {
		out := make([]domain.Action, 0)
		for _, a := range s.actions {
			if a.ProjectID == projectID {
				out = append(out, a)
			}
		}
		return out
	})
}

func (s *Server) handleCreateAction(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateActionRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	a := domain.Action{
		ID:          newID(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.ActionPlanned,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsProject(userIDFrom(r.Context()), req.ProjectID) {
		writeDetail(w, http.StatusNotFound, "Project not found")
		return
	}
	s.actions = append(s.actions, a)
	writeJSON(w, http.StatusOK, a)
}

// ── timeline ─────────────────────────────────────────────────────────────────

func (s *Server) handleListTimeline(w http.ResponseWriter, r *http.Request) {
	s.scopedList(w, r, func(projectID string) any {
		out := make([]domain.TimelineItem, 0)
		for _, t := range s.timeline {
			if t.ProjectID == projectID {
				out = append(out, t)
			}
		}
		return out
	})
}

func (s *Server) handleCreateTimelineItem(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateTimelineItemRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	typ, _ := domain.ParseTimelineType(string(req.Type))

	item := domain.TimelineItem{
		ID:        newID(),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Type:      typ,
		StartDate: s.now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsProject(userIDFrom(r.Context()), req.ProjectID) {
		writeDetail(w, http.StatusNotFound, "Project not found")
		return
	}
	s.timeline = append(s.timeline, item)
	writeJSON(w, http.StatusOK, item)
}

// ── tasks ────────────────────────────────────────────────────────────────────

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["timelineItemID"]
	userID := userIDFrom(r.Context())

	s.mu.Lock()
	var projectID string
	for _, t := range s.timeline {
		if t.ID == itemID {
			projectID = t.ProjectID
			break
		}
	}
	if projectID == "" || !s.ownsProject(userID, projectID) {
		s.mu.Unlock()
		writeDetail(w, http.StatusNotFound, "Timeline item not found")
		return
	}
	out := make([]domain.Task, 0)
	for _, t := range s.tasks {
		if t.TimelineItemID == itemID {
			out = append(out, t)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateTaskRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	task := domain.Task{
		ID:             newID(),
		ProjectID:      req.ProjectID,
		TimelineItemID: req.TimelineItemID,
		Title:          req.Title,
		Status:         domain.TaskTodo,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsProject(userIDFrom(r.Context()), req.ProjectID) {
		writeDetail(w, http.StatusNotFound, "Project not found")
		return
	}
	if !s.timelineItemIn(req.ProjectID, req.TimelineItemID) {
		writeDetail(w, http.StatusNotFound, "Timeline item not found")
		return
	}
	s.tasks = append(s.tasks, task)
	writeJSON(w, http.StatusOK, task)
}

// ── comments ─────────────────────────────────────────────────────────────────

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	s.scopedList(w, r, func(projectID string) any {
		out := make([]domain.Comment, 0)
		for _, c := range s.comments {
			if c.ProjectID == projectID {
				out = append(out, c)
			}
		}
		return out
	})
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateCommentRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	c := domain.Comment{
		ID:             newID(),
		ProjectID:      req.ProjectID,
		TimelineItemID: req.TimelineItemID,
		Content:        req.Content,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsProject(userIDFrom(r.Context()), req.ProjectID) {
		writeDetail(w, http.StatusNotFound, "Project not found")
		return
	}
	if !s.timelineItemIn(req.ProjectID, req.TimelineItemID) {
		writeDetail(w, http.StatusNotFound, "Timeline item not found")
		return
	}
	s.comments = append(s.comments, c)
	writeJSON(w, http.StatusOK, c)
}

// ── documents ────────────────────────────────────────────────────────────────

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	s.scopedList(w, r, func(projectID string) any {
		out := make([]domain.Document, 0)
		for _, d := range s.documents {
			if d.ProjectID == projectID {
				out = append(out, d)
			}
		}
		return out
	})
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateDocumentRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	d := domain.Document{
		ID:             newID(),
		ProjectID:      req.ProjectID,
		TimelineItemID: req.TimelineItemID,
		Name:           req.Name,
		URL:            req.URL,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsProject(userIDFrom(r.Context()), req.ProjectID) {
		writeDetail(w, http.StatusNotFound, "Project not found")
		return
	}
	if !s.timelineItemIn(req.ProjectID, req.TimelineItemID) {
		writeDetail(w, http.StatusNotFound, "Timeline item not found")
		return
	}
	s.documents = append(s.documents, d)
	writeJSON(w, http.StatusOK, d)
}
