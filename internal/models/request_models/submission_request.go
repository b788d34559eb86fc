package request_models

type CreateSubmissionRequest struct {
	Name    string  `json:"name" form:"name"`
	Phone   string  `json:"phone" form:"phone"`
	Email   *string `json:"email" form:"email"`
	Goal    string  `json:"goal" form:"goal"`
	Message *string `json:"message" form:"message"`
	Trainer *string `json:"trainer" form:"trainer"`
	Plan    *string `json:"plan" form:"plan"`
	Intent  *string `json:"intent" form:"intent"`
}

// UpdateSubmissionRequest is a partial update. Nil fields are left untouched
// and keys outside this set are ignored by the JSON decoder.
type UpdateSubmissionRequest struct {
	Name    *string `json:"name" form:"name"`
	Phone   *string `json:"phone" form:"phone"`
	Email   *string `json:"email" form:"email"`
	Goal    *string `json:"goal" form:"goal"`
	Message *string `json:"message" form:"message"`
	Trainer *string `json:"trainer" form:"trainer"`
	Plan    *string `json:"plan" form:"plan"`
	Intent  *string `json:"intent" form:"intent"`
	Status  *string `json:"status" form:"status"`
}

// Fields returns the provided fields keyed by column name. An empty string
// for a nullable column clears it.
func (r UpdateSubmissionRequest) Fields() map[string]any {
	fields := make(map[string]any)
	add := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	addNullable := func(column string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			fields[column] = nil
			return
		}
		fields[column] = *v
	}
	add("name", r.Name)
	add("phone", r.Phone)
	addNullable("email", r.Email)
	add("goal", r.Goal)
	addNullable("message", r.Message)
	addNullable("trainer", r.Trainer)
	addNullable("plan", r.Plan)
	addNullable("intent", r.Intent)
	add("status", r.Status)
	return fields
}
