package domain

type Role string

const (
	RoleCustomer   Role = "Customer"
	RolePilot      Role = "Pilot"
	RoleTechnician Role = "Technician"
	RoleManager    Role = "Manager"
)
