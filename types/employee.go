package types

import (
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// FieldNames are the record columns in file order. They double as the
// prompts shown when a record is entered.
var FieldNames = []string{
	"Emp_ID",
	"First_Name",
	"Last_Name",
	"Gender",
	"E_Mail",
	"Fathers_Name",
	"Mothers_Name",
	"Date_of_Birth",
	"Age",
	"Date_of_Joining",
	"Salary",
	"SSN",
	"Phone_No",
}

// NumFields is the number of comma separated fields in a record line.
var NumFields = len(FieldNames)

// Employee is one record of the record file. Every field is kept as text,
// exactly as it was entered.
type Employee struct {
	EmpID         string
	FirstName     string
	LastName      string
	Gender        string
	Email         string
	FathersName   string
	MothersName   string
	DateOfBirth   string
	Age           string
	DateOfJoining string
	Salary        string
	SSN           string
	PhoneNo       string
}

// Fields returns the values in FieldNames order.
func (e Employee) Fields() []string {
	return []string{
		e.EmpID, e.FirstName, e.LastName, e.Gender, e.Email,
		e.FathersName, e.MothersName, e.DateOfBirth, e.Age,
		e.DateOfJoining, e.Salary, e.SSN, e.PhoneNo,
	}
}

// SetField assigns the i-th field (FieldNames order).
func (e *Employee) SetField(i int, value string) {
	ptrs := []*string{
		&e.EmpID, &e.FirstName, &e.LastName, &e.Gender, &e.Email,
		&e.FathersName, &e.MothersName, &e.DateOfBirth, &e.Age,
		&e.DateOfJoining, &e.Salary, &e.SSN, &e.PhoneNo,
	}
	*ptrs[i] = value
}

// Encode returns the record line without the trailing newline.
func (e Employee) Encode() string {
	return strings.Join(e.Fields(), ",")
}

// ParseEmployee decodes a record line as written by Encode.
func ParseEmployee(line string) (Employee, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, ",")
	if len(parts) != NumFields {
		return Employee{}, errors.NotValidf("record with %d fields (want %d)", len(parts), NumFields)
	}
	var e Employee
	for i, p := range parts {
		e.SetField(i, p)
	}
	return e, nil
}

// Key parses EmpID as the index key. IDs must fit in 32 bits and carry no
// surrounding whitespace, so the stored text and the key always agree.
func (e Employee) Key() (int, error) {
	k, err := strconv.ParseInt(e.EmpID, 10, 32)
	if err != nil {
		return 0, errors.NotValidf("Emp_ID %q", e.EmpID)
	}
	return int(k), nil
}

// Validate checks that the record can be written as one line and indexed.
func (e Employee) Validate() error {
	if _, err := e.Key(); err != nil {
		return err
	}
	for i, f := range e.Fields() {
		if strings.ContainsAny(f, ",\r\n") {
			return errors.NotValidf("%s containing a comma or line break", FieldNames[i])
		}
	}
	return nil
}
