// Package dto defines the input tree decoded from the job-card form and
// the output shapes returned by the use cases.
package dto

import (
	"mime/multipart"
	"time"

	"jobdesk/internal/domain/jobcard"
)

// ItemGroupInput is one item slot of the decoded form together with its
// complaints. The form decoder produces this tree once at the boundary;
// nothing downstream looks at the raw form again.
type ItemGroupInput struct {
	Item       string
	Serial     string
	Config     string
	Complaints []ComplaintInput
}

// ComplaintInput is one complaint under an item slot. ID is set on edit
// when the complaint maps to an existing row; nil means a new row.
type ComplaintInput struct {
	ID          *uint
	Description string
	Notes       string
	Uploads     []*multipart.FileHeader
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	FilePath     string    `json:"file_path"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type JobCardDTO struct {
	ID                   uint            `json:"id"`
	TicketNo             string          `json:"ticket_no"`
	Customer             string          `json:"customer"`
	Address              string          `json:"address"`
	Phone                string          `json:"phone"`
	Item                 string          `json:"item"`
	StandardItem         bool            `json:"standard_item"`
	Serial               string          `json:"serial,omitempty"`
	Config               string          `json:"config,omitempty"`
	ComplaintDescription string          `json:"complaint_description,omitempty"`
	ComplaintNotes       string          `json:"complaint_notes,omitempty"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	Attachments          []AttachmentDTO `json:"attachments"`
}

// TicketGroupDTO buckets the rows sharing one ticket number, for the
// grouped list view.
type TicketGroupDTO struct {
	TicketNo string       `json:"ticket_no"`
	Customer string       `json:"customer"`
	Phone    string       `json:"phone"`
	Cards    []JobCardDTO `json:"cards"`
}

type ComplaintDTO struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Notes       string          `json:"notes,omitempty"`
	Status      string          `json:"status"`
	Attachments []AttachmentDTO `json:"attachments"`
}

type ItemGroupDTO struct {
	Item       string         `json:"item"`
	Serial     string         `json:"serial,omitempty"`
	Config     string         `json:"config,omitempty"`
	Complaints []ComplaintDTO `json:"complaints"`
}

// TicketDTO is the edit-view shape: customer info once, rows regrouped
// under their items.
type TicketDTO struct {
	TicketNo  string         `json:"ticket_no"`
	Customer  string         `json:"customer"`
	Address   string         `json:"address"`
	Phone     string         `json:"phone"`
	Items     []ItemGroupDTO `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewAttachmentDTO(a *jobcard.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		FilePath:     a.FilePath(),
		OriginalName: a.OriginalName(),
		ContentType:  a.ContentType(),
		Size:         a.Size(),
		UploadedAt:   a.UploadedAt(),
	}
}

func NewJobCardDTO(jc *jobcard.JobCard, attachments []*jobcard.Attachment) JobCardDTO {
	attachmentDTOs := make([]AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		attachmentDTOs = append(attachmentDTOs, NewAttachmentDTO(a))
	}

	return JobCardDTO{
		ID:                   jc.ID(),
		TicketNo:             jc.TicketNo(),
		Customer:             jc.Customer(),
		Address:              jc.Address(),
		Phone:                jc.Phone(),
		Item:                 jc.Item().String(),
		StandardItem:         jc.Item().IsStandard(),
		Serial:               jc.Serial(),
		Config:               jc.Config(),
		ComplaintDescription: jc.ComplaintDescription(),
		ComplaintNotes:       jc.ComplaintNotes(),
		Status:               jc.Status().String(),
		CreatedAt:            jc.CreatedAt(),
		UpdatedAt:            jc.UpdatedAt(),
		Attachments:          attachmentDTOs,
	}
}
