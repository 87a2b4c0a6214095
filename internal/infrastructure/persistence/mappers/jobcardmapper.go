package mappers

import (
	"time"

	"jobdesk/internal/domain/jobcard"
	vo "jobdesk/internal/domain/jobcard/valueobjects"
	"jobdesk/internal/infrastructure/persistence/models"
)

// JobCardMapper handles the conversion between job card domain entities
// and persistence models.
type JobCardMapper interface {
	ToModel(jc *jobcard.JobCard) *models.JobCardModel
	ToDomain(model *models.JobCardModel) (*jobcard.JobCard, error)
	AttachmentToModel(a *jobcard.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*jobcard.Attachment, error)
}

type JobCardMapperImpl struct{}

func NewJobCardMapper() JobCardMapper {
	return &JobCardMapperImpl{}
}

func (m *JobCardMapperImpl) ToModel(jc *jobcard.JobCard) *models.JobCardModel {
	return &models.JobCardModel{
		ID:                   jc.ID(),
		TicketNo:             jc.TicketNo(),
		Customer:             jc.Customer(),
		Address:              jc.Address(),
		Phone:                jc.Phone(),
		Item:                 jc.Item().String(),
		Serial:               jc.Serial(),
		Config:               jc.Config(),
		ComplaintDescription: jc.ComplaintDescription(),
		ComplaintNotes:       jc.ComplaintNotes(),
		Status:               jc.Status().String(),
		CreatedAt:            jc.CreatedAt().UnixMilli(),
		UpdatedAt:            jc.UpdatedAt().UnixMilli(),
	}
}

func (m *JobCardMapperImpl) ToDomain(model *models.JobCardModel) (*jobcard.JobCard, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return jobcard.ReconstructJobCard(
		model.ID,
		model.TicketNo,
		model.Customer,
		model.Address,
		model.Phone,
		vo.Item(model.Item),
		model.Serial,
		model.Config,
		model.ComplaintDescription,
		model.ComplaintNotes,
		status,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (m *JobCardMapperImpl) AttachmentToModel(a *jobcard.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		JobCardID:    a.JobCardID(),
		FilePath:     a.FilePath(),
		OriginalName: a.OriginalName(),
		ContentType:  a.ContentType(),
		Size:         a.Size(),
		UploadedAt:   a.UploadedAt().UnixMilli(),
	}
}

func (m *JobCardMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*jobcard.Attachment, error) {
	return jobcard.ReconstructAttachment(
		model.ID,
		model.JobCardID,
		model.FilePath,
		model.OriginalName,
		model.ContentType,
		model.Size,
		convertMillisToTime(model.UploadedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
