package handlers

import (
	"github.com/spec-kit/storefront-support/internal/api/dto"
	"github.com/spec-kit/storefront-support/internal/domain"
)

func storeView(s domain.Store) dto.StoreResponse {
	services := s.Services
	if services == nil {
		services = []string{}
	}
	return dto.StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Phone:       s.Phone,
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
		MapURL:      s.MapURL,
		Services:    services,
		IsVerified:  s.IsVerified,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func storeViews(stores []domain.Store) []dto.StoreResponse {
	views := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		views = append(views, storeView(s))
	}
	return views
}

func storeHoursView(h domain.StoreHours) dto.StoreHoursResponse {
	return dto.StoreHoursResponse{
		ID:          h.ID,
		Name:        h.Name,
		OpeningTime: h.OpeningTime,
		ClosingTime: h.ClosingTime,
	}
}

func storeUpdateView(u domain.StoreUpdate) dto.StoreUpdateResponse {
	return dto.StoreUpdateResponse{
		ID:           u.ID,
		StoreID:      u.StoreID,
		ProposedData: u.ProposedData,
		Approved:     u.Approved,
		CreatedAt:    u.CreatedAt,
	}
}

func specialHoursView(s domain.SpecialHours) dto.SpecialHoursResponse {
	return dto.SpecialHoursResponse{
		ID:          s.ID,
		StoreID:     s.StoreID,
		Date:        s.Date,
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
		Reason:      s.Reason,
		CreatedAt:   s.CreatedAt,
	}
}

func specialHoursViews(entries []domain.SpecialHours) []dto.SpecialHoursResponse {
	views := make([]dto.SpecialHoursResponse, 0, len(entries))
	for _, s := range entries {
		views = append(views, specialHoursView(s))
	}
	return views
}

func deliveryWindowView(w domain.DeliveryWindow) dto.DeliveryWindowResponse {
	return dto.DeliveryWindowResponse{
		ID:          w.ID,
		StoreID:     w.StoreID,
		OpeningTime: w.OpeningTime,
		ClosingTime: w.ClosingTime,
		Note:        w.Note,
		CreatedAt:   w.CreatedAt,
	}
}

func deliveryWindowViews(windows []domain.DeliveryWindow) []dto.DeliveryWindowResponse {
	views := make([]dto.DeliveryWindowResponse, 0, len(windows))
	for _, w := range windows {
		views = append(views, deliveryWindowView(w))
	}
	return views
}

func complaintView(c domain.Complaint) dto.ComplaintView {
	return dto.ComplaintView{
		ID:                 c.ID,
		UserID:             c.UserID,
		StoreID:            c.StoreID,
		IssueType:          c.IssueType,
		Priority:           c.Priority,
		Description:        c.Description,
		Status:             c.Status,
		AssignedDepartment: c.AssignedDepartment,
		SLAHours:           c.SLAHours,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func complaintViews(complaints []domain.Complaint) []dto.ComplaintView {
	views := make([]dto.ComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, complaintView(c))
	}
	return views
}

func slaRuleView(r domain.SLARule) dto.SLARuleResponse {
	return dto.SLARuleResponse{
		ID:         r.ID,
		IssueType:  r.IssueType,
		Department: r.Department,
		SLAHours:   r.SLAHours,
		CreatedAt:  r.CreatedAt,
	}
}

func queueTicketView(t domain.QueueTicket) dto.QueueTicketView {
	return dto.QueueTicketView{TicketID: t.ID, Status: t.Status}
}

func queueEntryView(e domain.QueueEntry) dto.QueueEntryView {
	return dto.QueueEntryView{
		ID:          e.Ticket.ID,
		ComplaintID: e.Ticket.ComplaintID,
		UserID:      e.Ticket.UserID,
		Reason:      e.Ticket.Reason,
		Status:      e.Ticket.Status,
		CreatedAt:   e.Ticket.CreatedAt,
		Complaint:   complaintView(e.Complaint),
	}
}

func notificationView(n domain.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		StoreID:   n.StoreID,
		Type:      n.Type,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}

func userView(u domain.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email}
}
