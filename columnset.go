package journal

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
)

// Role addresses a column in a ColumnSet.
//
// Core columns have fixed roles (RoleDate, RoleBase, ...). Extra columns get
// a generated role when they are added, which stays valid until the column
// is deleted, whatever happens to the other extra columns.
type Role string

// Roles of the core columns.
const (
	RoleDate        Role = "date"
	RoleBase        Role = "base"
	RoleBaseAmount  Role = "baseAmount"
	RoleQuote       Role = "quote"
	RoleQuoteAmount Role = "quoteAmount"
	RolePrice       Role = "price"
	RoleFeeBase     Role = "feeBase"
	RoleFeeQuote    Role = "feeQuote"
	RoleNotes       Role = "notes"
)

// coreRoles in their canonical order.
var coreRoles = []Role{
	RoleDate, RoleBase, RoleBaseAmount, RoleQuote, RoleQuoteAmount,
	RolePrice, RoleFeeBase, RoleFeeQuote, RoleNotes,
}

var coreLabels = map[Role]string{
	RoleDate:        "Date",
	RoleBase:        "Base",
	RoleBaseAmount:  "Base amount",
	RoleQuote:       "Quote",
	RoleQuoteAmount: "Quote amount",
	RolePrice:       "Price",
	RoleFeeBase:     "Base fee",
	RoleFeeQuote:    "Quote fee",
	RoleNotes:       "Notes",
}

// extraRolePrefix starts every generated role, no core role starts with it.
const extraRolePrefix = "x-"

// CoreRoles returns the roles of the nine core columns in canonical order.
func CoreRoles() []Role { return append([]Role(nil), coreRoles...) }

// IsCore reports whether r is the role of a core column.
func (r Role) IsCore() bool {
	_, ok := coreLabels[r]
	return ok
}

func newExtraRole() Role { return Role(extraRolePrefix + uuid.NewString()) }

// DescribeExtra returns the display label of the extra column at position i.
func DescribeExtra(i int) string { return fmt.Sprintf("Extra (%d)", i+1) }

// ColumnSet is the schema of a journal: the nine core columns and an ordered
// list of extra columns.
//
// The kind of each core column is fixed (e.g. the base amount is always a
// DecimalColumn describing the base asset); only its name, visibility and
// precision can change.
type ColumnSet struct {
	core  map[Role]Column
	extra []extraEntry // in position order
	index map[Role]int // extra role to position in extra
}

type extraEntry struct {
	role   Role
	column ExtraColumn
}

// NewColumnSet creates a column set from its nine core columns and no extra
// column. Decimal descriptions are forced to match their role.
func NewColumnSet(date DateColumn, base AssetColumn, baseAmount DecimalColumn, quote AssetColumn, quoteAmount, price, feeBase, feeQuote DecimalColumn, notes TextColumn) *ColumnSet {
	baseAmount.Description = DescBase
	feeBase.Description = DescBase
	quoteAmount.Description = DescQuote
	feeQuote.Description = DescQuote
	price.Description = DescPrice

	s := &ColumnSet{
		core: map[Role]Column{
			RoleDate:        date,
			RoleBase:        base,
			RoleBaseAmount:  baseAmount,
			RoleQuote:       quote,
			RoleQuoteAmount: quoteAmount,
			RolePrice:       price,
			RoleFeeBase:     feeBase,
			RoleFeeQuote:    feeQuote,
			RoleNotes:       notes,
		},
		index: make(map[Role]int),
	}
	for role, c := range s.core {
		s.core[role] = cloneColumn(c)
	}
	return s
}

// Column returns the column addressed by role.
func (s *ColumnSet) Column(role Role) (Column, error) {
	if c, ok := s.core[role]; ok {
		return cloneColumn(c), nil
	}
	if i, ok := s.index[role]; ok {
		return cloneColumn(s.extra[i].column), nil
	}
	return nil, fmt.Errorf("column %q: %w", role, ErrOutOfRange)
}

// Has reports whether role addresses a column of s.
func (s *ColumnSet) Has(role Role) bool {
	_, err := s.Column(role)
	return err == nil
}

// Typed accessors of the core columns. They return copies.

func (s *ColumnSet) Date() DateColumn           { return s.coreAt(RoleDate).(DateColumn) }
func (s *ColumnSet) Base() AssetColumn          { return s.coreAt(RoleBase).(AssetColumn) }
func (s *ColumnSet) BaseAmount() DecimalColumn  { return s.coreAt(RoleBaseAmount).(DecimalColumn) }
func (s *ColumnSet) Quote() AssetColumn         { return s.coreAt(RoleQuote).(AssetColumn) }
func (s *ColumnSet) QuoteAmount() DecimalColumn { return s.coreAt(RoleQuoteAmount).(DecimalColumn) }
func (s *ColumnSet) Price() DecimalColumn       { return s.coreAt(RolePrice).(DecimalColumn) }
func (s *ColumnSet) FeeBase() DecimalColumn     { return s.coreAt(RoleFeeBase).(DecimalColumn) }
func (s *ColumnSet) FeeQuote() DecimalColumn    { return s.coreAt(RoleFeeQuote).(DecimalColumn) }
func (s *ColumnSet) Notes() TextColumn          { return s.coreAt(RoleNotes).(TextColumn) }

func (s *ColumnSet) coreAt(role Role) Column { return cloneColumn(s.core[role]) }

// NumExtra returns the number of extra columns.
func (s *ColumnSet) NumExtra() int { return len(s.extra) }

// ExtraAt returns the role and the definition of the extra column at position i.
func (s *ColumnSet) ExtraAt(i int) (Role, ExtraColumn, error) {
	if i < 0 || i >= len(s.extra) {
		return "", nil, fmt.Errorf("extra column %d of %d: %w", i, len(s.extra), ErrOutOfRange)
	}
	e := s.extra[i]
	return e.role, cloneColumn(e.column).(ExtraColumn), nil
}

// Position returns the current position of the extra column addressed by
// role, and false if role is not an extra column of s.
func (s *ColumnSet) Position(role Role) (int, bool) {
	i, ok := s.index[role]
	return i, ok
}

// Extras returns an iterator over the extra columns in position order.
func (s *ColumnSet) Extras() iter.Seq2[Role, ExtraColumn] {
	return func(yield func(Role, ExtraColumn) bool) {
		for _, e := range s.extra {
			if !yield(e.role, cloneColumn(e.column).(ExtraColumn)) {
				return
			}
		}
	}
}

// Roles returns every role of s: core roles in canonical order, then extra
// roles in position order.
func (s *ColumnSet) Roles() []Role {
	roles := CoreRoles()
	for _, e := range s.extra {
		roles = append(roles, e.role)
	}
	return roles
}

// DescribeRole returns a human label for role: "Base amount" for
// RoleBaseAmount, "Extra (1)" for the first extra column, etc.
//
// The empty role is returned unchanged. Unknown roles are returned as is.
func (s *ColumnSet) DescribeRole(role Role) string {
	if label, ok := coreLabels[role]; ok {
		return label
	}
	if i, ok := s.index[role]; ok {
		return DescribeExtra(i)
	}
	return string(role)
}

// Clone returns a deep copy of s. Extra columns keep their roles.
func (s *ColumnSet) Clone() *ColumnSet {
	c := &ColumnSet{
		core:  make(map[Role]Column, len(s.core)),
		extra: make([]extraEntry, len(s.extra)),
		index: make(map[Role]int, len(s.index)),
	}
	for role, col := range s.core {
		c.core[role] = cloneColumn(col)
	}
	for i, e := range s.extra {
		c.extra[i] = extraEntry{role: e.role, column: cloneColumn(e.column).(ExtraColumn)}
		c.index[e.role] = i
	}
	return c
}

// String lists the column names, hidden ones between brackets.
func (s *ColumnSet) String() string {
	var b strings.Builder
	for i, role := range s.Roles() {
		if i > 0 {
			b.WriteString(", ")
		}
		c, _ := s.Column(role)
		if c.Hidden() {
			fmt.Fprintf(&b, "[%s]", c.Title())
		} else {
			b.WriteString(c.Title())
		}
	}
	return b.String()
}

// addExtra appends col and returns its new role.
func (s *ColumnSet) addExtra(col ExtraColumn) Role {
	role := newExtraRole()
	s.index[role] = len(s.extra)
	s.extra = append(s.extra, extraEntry{role: role, column: cloneColumn(col).(ExtraColumn)})
	return role
}

// replace sets the column addressed by role to col.
//
// Core columns only accept a column of the same shape, and only take its
// name, visibility and precision. Extra columns are fully replaced.
func (s *ColumnSet) replace(role Role, col Column) error {
	if prev, ok := s.core[role]; ok {
		if !sameShape(prev, col) {
			return fmt.Errorf("core column %q is a %s column, cannot become a %s column: %w", role, describeShape(prev), describeShape(col), ErrInvalidColumnEdit)
		}
		s.core[role] = editCore(prev, col)
		return nil
	}
	i, ok := s.index[role]
	if !ok {
		return fmt.Errorf("column %q: %w", role, ErrOutOfRange)
	}
	x, ok := col.(ExtraColumn)
	if !ok {
		return fmt.Errorf("extra column %q cannot be a %s column: %w", role, col.Kind(), ErrInvalidColumnEdit)
	}
	s.extra[i].column = cloneColumn(x).(ExtraColumn)
	return nil
}

// removeExtra deletes the extra column addressed by role.
func (s *ColumnSet) removeExtra(role Role) error {
	if role.IsCore() {
		return fmt.Errorf("column %q: %w", role, ErrCoreColumnUndeletable)
	}
	i, ok := s.index[role]
	if !ok {
		return fmt.Errorf("column %q: %w", role, ErrOutOfRange)
	}
	s.extra = append(s.extra[:i], s.extra[i+1:]...)
	delete(s.index, role)
	// positions are recomputed, roles stay.
	for j := i; j < len(s.extra); j++ {
		s.index[s.extra[j].role] = j
	}
	return nil
}

// setHidden sets the visibility of the column addressed by role.
func (s *ColumnSet) setHidden(role Role, hidden bool) error {
	c, err := s.Column(role)
	if err != nil {
		return err
	}
	h := c.header()
	h.Hide = hidden
	c = withHeader(c, h)
	if role.IsCore() {
		s.core[role] = c
		return nil
	}
	s.extra[s.index[role]].column = c.(ExtraColumn)
	return nil
}

func describeShape(c Column) string {
	if d, ok := c.(DecimalColumn); ok {
		return fmt.Sprintf("%s %s", d.Description, d.Kind())
	}
	return string(c.Kind())
}
