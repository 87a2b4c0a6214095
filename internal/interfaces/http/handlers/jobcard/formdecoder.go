package jobcard

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"jobdesk/internal/application/jobcard/dto"
)

// DecodedForm is the structured result of parsing the job-card form.
// The browser submits parallel arrays (items, serials, configs, plus
// complaints-{i} and images-{i}-{j} families keyed by slot position);
// they are correlated here exactly once, and everything downstream
// consumes this tree.
type DecodedForm struct {
	Customer            string
	Address             string
	Phone               string
	Items               []dto.ItemGroupInput
	DeleteAttachmentIDs []uint
}

// DecodeJobCardForm parses the multipart form into the input tree.
//
// Decoding is lenient by design: malformed optional values degrade to
// empty defaults and never produce an error. Required-field validation
// belongs to the use cases, not here.
//
// Rules carried over from the original form contract:
//   - a slot with an empty item name is skipped, but its index keeps
//     counting so the complaint and image families stay aligned
//   - a duplicate item name merges into the first slot: the first
//     slot's serial and config win, complaints are appended
//   - a blank complaint is kept only when it carries a row id, which
//     marks an intentional clearing on edit; otherwise it is skipped
func DecodeJobCardForm(form *multipart.Form) *DecodedForm {
	decoded := &DecodedForm{
		Customer:            firstValue(form, "customer"),
		Address:             firstValue(form, "address"),
		Phone:               firstValue(form, "phone"),
		DeleteAttachmentIDs: parseIDList(form.Value["delete_images"]),
	}

	items := form.Value["items"]
	serials := form.Value["serials"]
	configs := form.Value["configs"]

	indexByItem := make(map[string]int)

	for i := range items {
		itemName := strings.TrimSpace(items[i])
		if itemName == "" {
			continue
		}

		complaints := decodeComplaints(form, i)
		if len(complaints) == 0 {
			continue
		}

		if idx, ok := indexByItem[itemName]; ok {
			decoded.Items[idx].Complaints = append(decoded.Items[idx].Complaints, complaints...)
			continue
		}

		indexByItem[itemName] = len(decoded.Items)
		decoded.Items = append(decoded.Items, dto.ItemGroupInput{
			Item:       itemName,
			Serial:     valueAt(serials, i),
			Config:     valueAt(configs, i),
			Complaints: complaints,
		})
	}

	return decoded
}

// decodeComplaints reads the complaint family of slot i. The raw index
// j keys the notes, ids and image files even when earlier complaints
// in the slot were blank.
func decodeComplaints(form *multipart.Form, i int) []dto.ComplaintInput {
	descriptions := form.Value[fmt.Sprintf("complaints-%d", i)]
	notes := form.Value[fmt.Sprintf("complaint_notes-%d", i)]
	ids := form.Value[fmt.Sprintf("complaint_ids-%d", i)]

	complaints := make([]dto.ComplaintInput, 0, len(descriptions))
	for j := range descriptions {
		description := strings.TrimSpace(descriptions[j])
		id := parseOptionalID(valueAt(ids, j))

		if description == "" && id == nil {
			continue
		}

		complaints = append(complaints, dto.ComplaintInput{
			ID:          id,
			Description: description,
			Notes:       valueAt(notes, j),
			Uploads:     form.File[fmt.Sprintf("images-%d-%d", i, j)],
		})
	}
	return complaints
}

func firstValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func valueAt(values []string, i int) string {
	if i >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[i])
}

func parseOptionalID(s string) *uint {
	if s == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(s, 10, 32)
	if err != nil || parsed == 0 {
		return nil
	}
	id := uint(parsed)
	return &id
}

func parseIDList(values []string) []uint {
	var ids []uint
	for _, v := range values {
		if id := parseOptionalID(strings.TrimSpace(v)); id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}
