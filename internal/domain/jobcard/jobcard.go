package jobcard

import (
	"fmt"
	"strings"
	"time"

	vo "jobdesk/internal/domain/jobcard/valueobjects"
)

// JobCard is one (item, complaint) pair logged for a customer visit.
// Every row created during the same visit carries the same ticket number,
// so a "ticket" is the set of rows sharing a ticket_no rather than a
// record of its own.
type JobCard struct {
	id                   uint
	ticketNo             string
	customer             string
	address              string
	phone                string
	item                 vo.Item
	serial               string
	config               string
	complaintDescription string
	complaintNotes       string
	status               vo.Status
	createdAt            time.Time
	updatedAt            time.Time
	attachments          []*Attachment
}

func NewJobCard(
	customer string,
	address string,
	phone string,
	item vo.Item,
	serial string,
	config string,
	complaintDescription string,
	complaintNotes string,
) (*JobCard, error) {
	customer = strings.TrimSpace(customer)
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)

	if len(customer) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(customer) > 200 {
		return nil, fmt.Errorf("customer name exceeds maximum length of 200 characters")
	}
	if len(address) == 0 {
		return nil, fmt.Errorf("address is required")
	}
	if len(phone) == 0 {
		return nil, fmt.Errorf("phone is required")
	}
	if len(phone) > 50 {
		return nil, fmt.Errorf("phone exceeds maximum length of 50 characters")
	}
	if len(item) == 0 {
		return nil, fmt.Errorf("item is required")
	}

	now := time.Now()

	jc := &JobCard{
		customer:             customer,
		address:              address,
		phone:                phone,
		item:                 item,
		serial:               strings.TrimSpace(serial),
		config:               strings.TrimSpace(config),
		complaintDescription: strings.TrimSpace(complaintDescription),
		complaintNotes:       strings.TrimSpace(complaintNotes),
		status:               vo.StatusLogged,
		createdAt:            now,
		updatedAt:            now,
		attachments:          []*Attachment{},
	}

	return jc, nil
}

func ReconstructJobCard(
	id uint,
	ticketNo string,
	customer string,
	address string,
	phone string,
	item vo.Item,
	serial string,
	config string,
	complaintDescription string,
	complaintNotes string,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*JobCard, error) {
	if id == 0 {
		return nil, fmt.Errorf("job card ID cannot be zero")
	}
	if len(ticketNo) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(customer) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(item) == 0 {
		return nil, fmt.Errorf("item is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &JobCard{
		id:                   id,
		ticketNo:             ticketNo,
		customer:             customer,
		address:              address,
		phone:                phone,
		item:                 item,
		serial:               serial,
		config:               config,
		complaintDescription: complaintDescription,
		complaintNotes:       complaintNotes,
		status:               status,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		attachments:          []*Attachment{},
	}, nil
}

func (jc *JobCard) ID() uint {
	return jc.id
}

func (jc *JobCard) TicketNo() string {
	return jc.ticketNo
}

func (jc *JobCard) Customer() string {
	return jc.customer
}

func (jc *JobCard) Address() string {
	return jc.address
}

func (jc *JobCard) Phone() string {
	return jc.phone
}

func (jc *JobCard) Item() vo.Item {
	return jc.item
}

func (jc *JobCard) Serial() string {
	return jc.serial
}

func (jc *JobCard) Config() string {
	return jc.config
}

func (jc *JobCard) ComplaintDescription() string {
	return jc.complaintDescription
}

func (jc *JobCard) ComplaintNotes() string {
	return jc.complaintNotes
}

func (jc *JobCard) Status() vo.Status {
	return jc.status
}

func (jc *JobCard) CreatedAt() time.Time {
	return jc.createdAt
}

func (jc *JobCard) UpdatedAt() time.Time {
	return jc.updatedAt
}

func (jc *JobCard) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(jc.attachments))
	copy(attachmentsCopy, jc.attachments)
	return attachmentsCopy
}

func (jc *JobCard) SetID(id uint) error {
	if jc.id != 0 {
		return fmt.Errorf("job card ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("job card ID cannot be zero")
	}
	jc.id = id
	return nil
}

func (jc *JobCard) SetTicketNo(ticketNo string) error {
	if len(jc.ticketNo) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(ticketNo) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	jc.ticketNo = ticketNo
	return nil
}

// UpdateCustomerInfo overwrites the denormalized customer fields.
// Edits replace these on every row of the ticket.
func (jc *JobCard) UpdateCustomerInfo(customer, address, phone string) error {
	customer = strings.TrimSpace(customer)
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)

	if len(customer) == 0 {
		return fmt.Errorf("customer name is required")
	}
	if len(address) == 0 {
		return fmt.Errorf("address is required")
	}
	if len(phone) == 0 {
		return fmt.Errorf("phone is required")
	}

	jc.customer = customer
	jc.address = address
	jc.phone = phone
	jc.updatedAt = time.Now()
	return nil
}

// UpdateItemDetails overwrites the item fields of this row.
func (jc *JobCard) UpdateItemDetails(item vo.Item, serial, config string) error {
	if len(item) == 0 {
		return fmt.Errorf("item is required")
	}

	jc.item = item
	jc.serial = strings.TrimSpace(serial)
	jc.config = strings.TrimSpace(config)
	jc.updatedAt = time.Now()
	return nil
}

// UpdateComplaint overwrites the complaint fields of this row. An empty
// description is allowed here: an edit referencing the row by id may
// intentionally clear it.
func (jc *JobCard) UpdateComplaint(description, notes string) {
	jc.complaintDescription = strings.TrimSpace(description)
	jc.complaintNotes = strings.TrimSpace(notes)
	jc.updatedAt = time.Now()
}

func (jc *JobCard) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if jc.status == newStatus {
		return nil
	}

	if !jc.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", jc.status, newStatus)
	}

	jc.status = newStatus
	jc.updatedAt = time.Now()
	return nil
}

func (jc *JobCard) AddAttachment(attachment *Attachment) error {
	if attachment == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	if attachment.JobCardID() != jc.id {
		return fmt.Errorf("attachment job card ID mismatch")
	}

	jc.attachments = append(jc.attachments, attachment)
	return nil
}

func (jc *JobCard) Validate() error {
	if len(jc.customer) == 0 {
		return fmt.Errorf("customer name is required")
	}
	if len(jc.address) == 0 {
		return fmt.Errorf("address is required")
	}
	if len(jc.phone) == 0 {
		return fmt.Errorf("phone is required")
	}
	if len(jc.item) == 0 {
		return fmt.Errorf("item is required")
	}
	if !jc.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	return nil
}
