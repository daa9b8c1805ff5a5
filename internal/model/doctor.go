package model

type Doctor struct {
	ID             int64  `db:"doctor_id" json:"doctor_id"`
	Name           string `db:"name" json:"name"`
	Specialization string `db:"specialization" json:"specialization"`
	Phone          string `db:"phone" json:"phone"`
	Email          string `db:"email" json:"email"`
}

type CreateDoctorRequest struct {
	Name           string `form:"name" binding:"required,max=100"`
	Specialization string `form:"specialization" binding:"required,max=100"`
	Phone          string `form:"phone" binding:"required,max=20"`
	Email          string `form:"email" binding:"required,email,max=100"`
}
