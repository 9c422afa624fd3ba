package fundamentals

import (
	"context"
	"fmt"
	"io"
)

// Describable is anything that can render a human-readable label.
type Describable interface {
	Describe() string
}

// Person is an immutable name/age record.
type Person struct {
	Name string
	Age  uint32
}

// Describe implements Describable.
func (p Person) Describe() string {
	return fmt.Sprintf("%sさん（%d歳）", p.Name, p.Age)
}

// ShowDescribable prints a person's label through the Describable capability.
func ShowDescribable(_ context.Context, w io.Writer) error {
	person := Person{Name: "田中", Age: 25}

	var d Describable = DescribeFunc(person.Describe).WithPrefix("人物の説明: ")
	fmt.Fprintln(w, d.Describe())
	return nil
}

// ============================================================================
// Status
// ============================================================================

// Status is exactly one of Active, Inactive, Pending or Failure.
// The set of variants is closed: only this package can implement it.
type Status interface {
	isStatus()
}

// Active carries no data.
type Active struct{}

// Inactive carries no data.
type Inactive struct{}

// Pending carries a progress message.
type Pending struct {
	Message string
}

// Failure carries an error code and message. It also satisfies error.
type Failure struct {
	Code    int
	Message string
}

func (Active) isStatus()   {}
func (Inactive) isStatus() {}
func (Pending) isStatus()  {}
func (Failure) isStatus()  {}

func (s Active) String() string   { return DescribeStatus(s) }
func (s Inactive) String() string { return DescribeStatus(s) }
func (s Pending) String() string  { return DescribeStatus(s) }
func (s Failure) String() string  { return DescribeStatus(s) }

// Error returns the same label as DescribeStatus.
func (s Failure) Error() string { return DescribeStatus(s) }

// DescribeStatus matches every Status variant to its label.
func DescribeStatus(s Status) string {
	switch s := s.(type) {
	case Active:
		return "アクティブ"
	case Inactive:
		return "非アクティブ"
	case Pending:
		return "保留中: " + s.Message
	case Failure:
		return fmt.Sprintf("エラー%d: %s", s.Code, s.Message)
	default:
		return "不明な状態"
	}
}

// ShowStatus constructs a pending status and consumes it with a match.
func ShowStatus(_ context.Context, w io.Writer) error {
	var status Status = Pending{Message: "処理中"}
	fmt.Fprintln(w, DescribeStatus(status))
	return nil
}
