package model

type Patient struct {
	ID      int64  `db:"patient_id" json:"patient_id"`
	Name    string `db:"name" json:"name"`
	Age     int    `db:"age" json:"age"`
	Gender  string `db:"gender" json:"gender"`
	Address string `db:"address" json:"address"`
	Phone   string `db:"phone" json:"phone"`
}

// CreatePatientRequest is bound from the add_patient form. Age stays a string
// so a non-numeric value is reported against its field.
type CreatePatientRequest struct {
	Name    string `form:"name" binding:"required,max=100"`
	Age     string `form:"age" binding:"required,number,max=3"`
	Gender  string `form:"gender" binding:"required,max=10"`
	Address string `form:"address" binding:"required,max=255"`
	Phone   string `form:"phone" binding:"required,max=20"`
}
