package semester

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	valid := []struct {
		name  string
		input any
		want  string
	}{
		{"int", 1244, "Spring 2024"},
		{"int64", int64(1248), "Fall 2024"},
		{"uint8", uint8(4), "Spring 1900"},
		{"uint64", uint64(1246), "Summer 2024"},
		{"numeric string", "1238", "Fall 2023"},
		{"canonical string", "Fall 2024", "Fall 2024"},
		{"lower case string", "fall 2024", "Fall 2024"},
		{"surrounding text", "semester: Summer 2024", "Summer 2024"},
	}

	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.String())
			assert.False(t, s.IsZero())
		})
	}

	invalid := []struct {
		name    string
		input   any
		wantErr error
	}{
		{"invalid code", 1241, ErrInvalidCode},
		{"negative code", -4, ErrInvalidCode},
		{"negative numeric string", "-4", ErrInvalidCode},
		{"overflowing uint64", uint64(math.MaxUint64), ErrInvalidCode},
		{"unknown term", "Winter 2024", ErrInvalidString},
		{"empty string", "", ErrInvalidString},
		{"float", 1244.0, ErrInvalidConstructorInput},
		{"nil", nil, ErrInvalidConstructorInput},
		{"slice", []int{1244}, ErrInvalidConstructorInput},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, s.IsZero(), "a failed construction should return the zero Semester")
		})
	}
}

func TestFromCodeAndParse(t *testing.T) {
	t.Parallel()

	fromCode, err := FromCode(1248)
	require.NoError(t, err)
	parsed, err := Parse("Fall 2024")
	require.NoError(t, err)

	assert.True(t, fromCode.Equal(parsed))
	assert.Equal(t, fromCode, parsed)

	_, err = FromCode(1241)
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = Parse("Winter 2024")
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	s, err := FromCode(1244)
	require.NoError(t, err)

	assert.Equal(t, Representation{Code: "1244", String: "Spring 2024"}, s.Get())
	assert.Equal(t, "1244", s.Code())
	assert.Equal(t, 1244, s.Int())
	assert.Equal(t, "Spring 2024", s.String())
	assert.Equal(t, TermAndYear{Term: "Spring", Year: "2024"}, s.TermAndYear())
	assert.Equal(t, Spring, s.Term())
	assert.Equal(t, 2024, s.Year())

	early, err := FromCode(4)
	require.NoError(t, err)
	assert.Equal(t, "0004", early.Code())
	assert.Equal(t, "Spring 1900", early.String())
}

func TestZeroSemester(t *testing.T) {
	t.Parallel()
	var s Semester

	assert.True(t, s.IsZero())
	assert.Equal(t, "", s.Code())
	assert.Equal(t, "", s.String())
	assert.Equal(t, Term(""), s.Term())
	assert.Equal(t, 0, s.Year())

	_, err := s.AddSemesters(1)
	assert.ErrorIs(t, err, ErrInvalidSemester)
	_, err = s.SubYears(1)
	assert.ErrorIs(t, err, ErrInvalidSemester)

	_, err = s.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidSemester)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		code     int
		op       func(Semester) (Semester, error)
		wantCode int
		wantText string
	}{
		{
			name:     "fall plus one semester",
			code:     1248,
			op:       func(s Semester) (Semester, error) { return s.AddSemesters(1) },
			wantCode: 1254,
			wantText: "Spring 2025",
		},
		{
			name:     "spring minus one semester",
			code:     1244,
			op:       func(s Semester) (Semester, error) { return s.AddSemesters(-1) },
			wantCode: 1238,
			wantText: "Fall 2023",
		},
		{
			name:     "spring plus one year",
			code:     1244,
			op:       func(s Semester) (Semester, error) { return s.AddYears(1) },
			wantCode: 1254,
			wantText: "Spring 2025",
		},
		{
			name:     "spring 2020 back one semester",
			code:     1204,
			op:       func(s Semester) (Semester, error) { return s.SubSemesters(1) },
			wantCode: 1198,
			wantText: "Fall 2019",
		},
		{
			name:     "summer minus two years",
			code:     1246,
			op:       func(s Semester) (Semester, error) { return s.SubYears(2) },
			wantCode: 1226,
			wantText: "Summer 2022",
		},
		{
			name:     "summer plus eleven semesters",
			code:     1246,
			op:       func(s Semester) (Semester, error) { return s.AddSemesters(11) },
			wantCode: 1284,
			wantText: "Spring 2028",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := FromCode(tc.code)
			require.NoError(t, err)

			got, err := tc.op(s)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, got.Int())
			assert.Equal(t, tc.wantText, got.String())

			// the receiver is a value and must not change
			assert.Equal(t, tc.code, s.Int())
		})
	}
}

func TestArithmeticOutOfRange(t *testing.T) {
	t.Parallel()

	first, err := Parse("Spring 1900")
	require.NoError(t, err)

	_, err = first.SubSemesters(1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = first.SubYears(1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	last, err := Parse("Fall 9999")
	require.NoError(t, err)

	_, err = last.AddSemesters(1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// shifts large enough to wrap int arithmetic must not land on a valid code
	spring, err := FromCode(1244)
	require.NoError(t, err)

	huge := []struct {
		name string
		op   func() (Semester, error)
	}{
		{"wrapping semesters", func() (Semester, error) { return spring.AddSemesters(3 * 1844674407370955162) }},
		{"wrapping years", func() (Semester, error) { return spring.AddYears(1844674407370955162) }},
		{"max int semesters", func() (Semester, error) { return spring.AddSemesters(math.MaxInt) }},
		{"min int semesters", func() (Semester, error) { return spring.AddSemesters(math.MinInt) }},
		{"min int subtracted", func() (Semester, error) { return spring.SubSemesters(math.MinInt) }},
		{"max int years back", func() (Semester, error) { return spring.SubYears(math.MaxInt) }},
		{"one past the span", func() (Semester, error) { return spring.AddSemesters(MaxShift + 1) }},
		{"shift with max int years", func() (Semester, error) { return spring.Shift(math.MaxInt, 0) }},
		{"shift with min int semesters", func() (Semester, error) { return spring.Shift(0, math.MinInt) }},
	}

	for _, tc := range huge {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op()
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.True(t, got.IsZero())
		})
	}
}

func TestShift(t *testing.T) {
	t.Parallel()

	last, err := Parse("Spring 9999")
	require.NoError(t, err)

	// one year forward and three semesters back cancel out
	got, err := last.Shift(1, -3)
	require.NoError(t, err)
	assert.True(t, got.Equal(last))

	_, err = last.AddYears(1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	fall, err := FromCode(1248)
	require.NoError(t, err)
	got, err = fall.Shift(-1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Spring 2024", got.String())

	first, err := FromCode(4)
	require.NoError(t, err)
	got, err = first.Shift(0, MaxShift-1)
	require.NoError(t, err)
	assert.Equal(t, "Fall 9999", got.String())

	_, err = Semester{}.Shift(0, 1)
	assert.ErrorIs(t, err, ErrInvalidSemester)
}

func TestNextPreviousAreInverse(t *testing.T) {
	t.Parallel()

	for _, code := range []int{1204, 1206, 1208, 1244, 1246, 1248} {
		s, err := FromCode(code)
		require.NoError(t, err)

		next, err := s.AddSemesters(1)
		require.NoError(t, err)
		back, err := next.AddSemesters(-1)
		require.NoError(t, err)
		assert.True(t, s.Equal(back), "next then previous of %s gave %s", s, back)

		prev, err := s.AddSemesters(-1)
		require.NoError(t, err)
		back, err = prev.AddSemesters(1)
		require.NoError(t, err)
		assert.True(t, s.Equal(back), "previous then next of %s gave %s", s, back)
	}
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	fall, err := Parse("Fall 2023")
	require.NoError(t, err)
	spring, err := Parse("Spring 2024")
	require.NoError(t, err)
	springNextYear, err := Parse("Spring 2025")
	require.NoError(t, err)

	assert.True(t, fall.Before(spring))
	assert.True(t, spring.After(fall))
	assert.False(t, spring.Before(spring))

	n, err := fall.SemestersUntil(spring)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = springNextYear.SemestersUntil(fall)
	require.NoError(t, err)
	assert.Equal(t, -4, n)

	shifted, err := fall.AddSemesters(n * -1)
	require.NoError(t, err)
	assert.True(t, shifted.Equal(springNextYear))

	_, err = Semester{}.SemestersUntil(fall)
	assert.ErrorIs(t, err, ErrInvalidSemester)
}

func TestTextEncoding(t *testing.T) {
	t.Parallel()

	type enrollment struct {
		Student  string   `json:"student"`
		Semester Semester `json:"semester"`
	}

	s, err := FromCode(1248)
	require.NoError(t, err)

	data, err := json.Marshal(enrollment{Student: "ada", Semester: s})
	require.NoError(t, err)
	assert.JSONEq(t, `{"student":"ada","semester":"Fall 2024"}`, string(data))

	var decoded enrollment
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, s.Equal(decoded.Semester))

	require.NoError(t, json.Unmarshal([]byte(`{"semester":"1244"}`), &decoded))
	assert.Equal(t, "Spring 2024", decoded.Semester.String())

	require.NoError(t, json.Unmarshal([]byte(`{"semester":"summer 2024"}`), &decoded))
	assert.Equal(t, 1246, decoded.Semester.Int())

	err = json.Unmarshal([]byte(`{"semester":"Winter 2024"}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestCodecBoundSemester(t *testing.T) {
	t.Parallel()

	table, err := NewTermTable(
		TermDef{Name: "Winter", Digit: 2, StartDay: 1},
		TermDef{Name: "Spring", Digit: 4, StartDay: 100},
		TermDef{Name: "Autumn", Digit: 8, StartDay: 250},
	)
	require.NoError(t, err)
	codec, err := NewCodec(table)
	require.NoError(t, err)

	s, err := codec.New("autumn 2020")
	require.NoError(t, err)
	assert.Equal(t, "Autumn 2020", s.String())
	assert.Equal(t, Term("Autumn"), s.Term())

	next, err := s.AddSemesters(1)
	require.NoError(t, err)
	assert.Equal(t, "Winter 2021", next.String())

	// decoding into an existing value keeps its table
	require.NoError(t, next.UnmarshalText([]byte("Spring 2022")))
	assert.Equal(t, 1224, next.Int())
	after, err := next.AddSemesters(1)
	require.NoError(t, err)
	assert.Equal(t, "Autumn 2022", after.String())
}
