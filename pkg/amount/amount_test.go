package amount

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	valid := []string{"0", "0.5", "7", "100000", "99650.1234", "12345678901234567"}
	for _, s := range valid {
		t.Run("accepts "+s, func(t *testing.T) {
			a, err := Parse(s)
			require.NoError(t, err)
			assert.True(t, a.Equal(MustParse(s)))
		})
	}

	invalid := []string{"", "007", "-1", "1.", ".5", "1.23456", "1e3", "12,5", "123456789012345678", " 1"}
	for _, s := range invalid {
		t.Run("rejects "+s, func(t *testing.T) {
			_, err := Parse(s)
			assert.Error(t, err)
			assert.False(t, IsValid(s))
		})
	}
}

func TestArithmeticIsExact(t *testing.T) {
	credits := MustParse("0.3")
	sum := credits.Add(MustParse("0.1")).Add(MustParse("0.2"))
	assert.Equal(t, "0.6", sum.String())

	cost := FromInt(7).MulInt(50)
	assert.Equal(t, "350", cost.String())

	remaining := MustParse("100000").Sub(cost)
	assert.Equal(t, "99650", remaining.String())
	assert.True(t, remaining.LessThan(MustParse("100000")))
	assert.True(t, remaining.GreaterThanOrEqual(MustParse("99650")))

	assert.True(t, MustParse("1").Sub(MustParse("1.0001")).IsNegative())
	assert.True(t, Zero().IsZero())
	assert.Equal(t, "-350", cost.Neg().String())
	assert.Equal(t, 1, MustParse("2").Cmp(MustParse("1.9999")))
}

func TestJSON(t *testing.T) {
	body, err := json.Marshal(struct {
		Credits Amount `json:"credits"`
	}{Credits: MustParse("1234.5000")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"credits":"1234.5"}`, string(body))

	var decoded struct {
		Value Amount `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"value":"-350"}`), &decoded))
	assert.Equal(t, "-350", decoded.Value.String())

	assert.Error(t, json.Unmarshal([]byte(`{"value":350}`), &decoded))
}

func TestSQL(t *testing.T) {
	v, err := MustParse("12.5").Value()
	require.NoError(t, err)
	assert.Equal(t, "12.5000", v)

	var a Amount
	require.NoError(t, a.Scan([]byte("99650.0000")))
	assert.Equal(t, "99650", a.String())
}

func FuzzParse(f *testing.F) {
	f.Add("0")
	f.Add("100000")
	f.Add("12.3456")
	f.Add("0001")
	f.Add("1e9")

	f.Fuzz(func(t *testing.T, input string) {
		a, err := Parse(input)
		if err != nil {
			return
		}
		if a.IsNegative() {
			t.Fatalf("parsed negative amount from %q", input)
		}
		again, err := Parse(a.String())
		if err != nil {
			t.Fatalf("canonical form %q of %q does not parse: %v", a.String(), input, err)
		}
		if !again.Equal(a) {
			t.Fatalf("round trip changed value for %q", input)
		}
	})
}
