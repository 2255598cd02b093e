// Package seeder fills a store with generated employee records.
package seeder

import (
	"math/rand/v2"
	"strconv"

	"RecordIndex/logger"
	"RecordIndex/types"

	"github.com/go-faker/faker/v4"
	"github.com/juju/errors"
)

type Adder interface {
	AddRecord(e types.Employee) (int64, error)
}

var genders = []string{"M", "F"}

// FakeEmployee returns a valid employee with the given Emp_ID.
func FakeEmployee(id int) types.Employee {
	return types.Employee{
		EmpID:         strconv.Itoa(id),
		FirstName:     faker.FirstName(),
		LastName:      faker.LastName(),
		Gender:        genders[rand.IntN(len(genders))],
		Email:         faker.Email(),
		FathersName:   faker.FirstName(),
		MothersName:   faker.FirstName(),
		DateOfBirth:   faker.Date(),
		Age:           strconv.Itoa(21 + rand.IntN(45)),
		DateOfJoining: faker.Date(),
		Salary:        strconv.Itoa(30000 + 1000*rand.IntN(120)),
		SSN:           strconv.Itoa(100+rand.IntN(900)) + "-" + strconv.Itoa(10+rand.IntN(90)) + "-" + strconv.Itoa(1000+rand.IntN(9000)),
		PhoneNo:       faker.Phonenumber(),
	}
}

// Seed adds n records with Emp_IDs counting up from firstID. IDs that are
// already taken are skipped and do not count towards n.
func Seed(a Adder, n int, firstID int) (int, error) {
	added := 0
	for id := firstID; added < n; id++ {
		_, err := a.AddRecord(FakeEmployee(id))
		if errors.IsAlreadyExists(err) {
			continue
		}
		if err != nil {
			return added, errors.Annotatef(err, "seed record %d", id)
		}
		added++
	}
	logger.Infof("seeded %d records starting at Emp_ID %d", added, firstID)
	return added, nil
}
