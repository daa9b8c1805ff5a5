package model

type Staff struct {
	ID     int64   `db:"staff_id" json:"staff_id"`
	Name   string  `db:"name" json:"name"`
	Role   string  `db:"role" json:"role"`
	Phone  string  `db:"phone" json:"phone"`
	Salary float64 `db:"salary" json:"salary"`
}

type CreateStaffRequest struct {
	Name   string `form:"name" binding:"required,max=100"`
	Role   string `form:"role" binding:"required,max=50"`
	Phone  string `form:"phone" binding:"required,max=20"`
	Salary string `form:"salary" binding:"required,numeric"`
}
