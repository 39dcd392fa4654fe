package friendlyerrors_test

import (
	"encoding/json"
	"fmt"
	"time"

	fe "github.com/bd808/friendlyerrors"
)

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func (u *User) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&u.Name, fe.Required, fe.Length(1, 100)),
		fe.Field(&u.Email, fe.Required),
		fe.Field(&u.Age, fe.Min(0), fe.Max(150)),
	}
}

func ExampleValidate() {
	user := &User{Name: "Alice", Email: "alice@example.com", Age: 30}
	if err := fe.Validate(user); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("valid")
	// Output: valid
}

func ExampleValidate_error() {
	user := &User{Age: -1}
	err := fe.Validate(user)
	fmt.Println(err)
	// Output: age: must be no less than 0; email: cannot be blank; name: cannot be blank.
}

func ExampleCheck() {
	user := &User{Age: -1}
	rep := fe.Check(user)

	b, _ := json.Marshal(rep)
	fmt.Println(string(b))
	// Output: {"message":"Validation Failed","code":1000,"errors":[{"field":"age","code":2072,"message":"must be no less than 0"},{"field":"email","code":2003,"message":"cannot be blank"},{"field":"name","code":2003,"message":"cannot be blank"}]}
}

func ExampleUnmarshalAndValidate() {
	body := []byte(`{"name":"Bob","email":"bob@example.com","age":25}`)
	var user User
	if err := fe.UnmarshalAndValidate(body, &user); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(user.Name)
	// Output: Bob
}

type Event struct {
	StartDate string `json:"start_date"`
}

func (e *Event) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&e.StartDate, fe.Required, fe.Date("2006-01-02").
			Min(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)).
			Max(time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC))),
	}
}

func ExampleDate() {
	e := &Event{StartDate: "2025-06-15"}
	if err := fe.Validate(e); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("valid")
	// Output: valid
}

type Payment struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	IsDraft  bool    `json:"-"`
}

func (p *Payment) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&p.Amount, fe.When(!p.IsDraft, "not draft", fe.Required, fe.Min(0.01)).
			Else(fe.Min(0.0))),
		fe.Field(&p.Currency, fe.Required, fe.In("USD", "EUR", "GBP")),
	}
}

func ExampleWhen() {
	p := &Payment{Amount: 10.00, Currency: "USD"}
	if err := fe.Validate(p); err != nil {
		fmt.Println(err)
		return
	}

	b, _ := json.Marshal(p)
	fmt.Println(string(b))
	// Output: {"amount":10,"currency":"USD"}
}
