package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/marqedonuts/backoffice/internal/backoffice"
)

// CreateEmployeeHandler godoc
// @Summary Add an employee to the roster
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body backoffice.EmployeeDraft true "Employee to add"
// @Success 201 {object} EmployeeResponse
// @Failure 400 {array} backoffice.FieldError
// @Failure 500 {string} string "Internal error"
// @Router /api/employees [post]
func CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var draft backoffice.EmployeeDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	employee, err := svc.AddEmployee(draft)
	if err != nil {
		if writeServiceError(w, err, "could not create employee") {
			return
		}
	}

	invalidateOverview()
	writeJSON(w, http.StatusCreated, toEmployeeResponse(employee))
}

// GetEmployeesHandler godoc
// @Summary List active employees
// @Tags staff
// @Produce json
// @Success 200 {array} EmployeeResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/employees [get]
func GetEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	employees, err := svc.ListActiveEmployees()
	if err != nil {
		http.Error(w, "could not fetch employees", http.StatusInternalServerError)
		return
	}
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = toEmployeeResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateCustomerHandler godoc
// @Summary Register a loyalty customer
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body backoffice.CustomerDraft true "Customer to add"
// @Success 201 {object} CustomerResponse
// @Failure 400 {array} backoffice.FieldError
// @Failure 500 {string} string "Internal error"
// @Router /api/customers [post]
func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var draft backoffice.CustomerDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	customer, err := svc.AddCustomer(draft)
	if err != nil {
		if writeServiceError(w, err, "could not create customer") {
			return
		}
	}

	invalidateOverview()
	writeJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

// GetCustomersHandler godoc
// @Summary List customers, biggest spenders first
// @Tags staff
// @Produce json
// @Success 200 {array} CustomerResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/customers [get]
func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := svc.ListCustomersBySpend()
	if err != nil {
		http.Error(w, "could not fetch customers", http.StatusInternalServerError)
		return
	}
	resp := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		resp[i] = toCustomerResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}
