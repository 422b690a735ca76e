package entity

import (
	"testing"

	"seminary/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Can(t *testing.T) {
	assert.True(t, RoleAdmin.Can(CapManageLectures))
	assert.True(t, RoleAdmin.Can(CapViewLectures))
	assert.True(t, RoleMember.Can(CapViewLectures))
	assert.False(t, RoleMember.Can(CapManageLectures))
	assert.False(t, Role("Admin").Can(CapManageLectures))
}

func TestUser_CanNil(t *testing.T) {
	var u *User
	assert.False(t, u.Can(CapViewLectures))
	assert.True(t, (&User{Role: RoleAdmin}).Can(CapManageLectures))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"":             SortLatest,
		"registerDate": SortLatest,
		"latest":       SortLatest,
		"등록일순":         SortLatest,
		"oldest":       SortOldest,
		"강의순":          SortSeries,
		"Series":       SortSeries,
		"강사순":          SortInstructor,
		"instructor":   SortInstructor,
		"popularity":   SortLatest,
		"; DROP TABLE": SortLatest,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSortKey(in), in)
	}
}

func TestListQuery_Category(t *testing.T) {
	assert.Equal(t, "", ListQuery{Category: "all"}.CategoryFilter())
	assert.Equal(t, "", ListQuery{Category: " ALL "}.CategoryFilter())
	assert.Equal(t, "", ListQuery{}.CategoryFilter())
	assert.Equal(t, "신학과정", ListQuery{Category: "신학과정"}.CategoryFilter())

	assert.Equal(t, "all", ListQuery{}.DisplayCategory())
	assert.Equal(t, "정규과정", ListQuery{Category: "정규과정"}.DisplayCategory())
}

func TestLectureInput_Validate(t *testing.T) {
	valid := LectureInput{Category: "신학과정", Series: "조직신학", Number: "1", Instructor: "김교수"}
	assert.NoError(t, valid.Validate())

	missing := LectureInput{Category: "신학과정", Series: "  "}
	err := missing.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Contains(t, err.Error(), "series")
	assert.Contains(t, err.Error(), "number")
	assert.Contains(t, err.Error(), "instructor")

	reserved := valid
	reserved.Category = "all"
	assert.ErrorIs(t, reserved.Validate(), apperr.ErrInvalidInput)

	// Categories are free-form; any name other than the reserved one is accepted.
	custom := valid
	custom.Category = "여름 특강"
	assert.NoError(t, custom.Validate())
}

func TestLectureInput_Normalize(t *testing.T) {
	in := LectureInput{
		Category:         " 신학과정 ",
		YoutubeEmbedLink: "https://youtu.be/abc123",
		DriveEmbedLink:   "https://drive.google.com/file/d/XYZ/view?usp=sharing",
	}.Normalize()

	assert.Equal(t, "신학과정", in.Category)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", in.YoutubeEmbedLink)
	assert.Equal(t, "https://drive.google.com/file/d/XYZ/preview", in.DriveEmbedLink)
}

func TestLecturePatch_Apply(t *testing.T) {
	lecture := &Lecture{
		Category:   "신학과정",
		Series:     "조직신학",
		Number:     "1",
		Instructor: "김교수",
		Materials:  []Material{{Name: "notes.pdf", URL: "/uploads/a.pdf", Type: "pdf"}},
	}

	instructor := "X"
	require.NoError(t, LecturePatch{Instructor: &instructor}.Apply(lecture))
	assert.Equal(t, "X", lecture.Instructor)
	assert.Equal(t, "조직신학", lecture.Series)
	assert.Len(t, lecture.Materials, 1)

	blank := ""
	err := LecturePatch{Series: &blank}.Apply(lecture)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "조직신학", lecture.Series)
}

func TestLecturePatch_Empty(t *testing.T) {
	assert.True(t, LecturePatch{}.Empty())
	d := ""
	assert.False(t, LecturePatch{Description: &d}.Empty())
}

func TestLecture_StorageKeys(t *testing.T) {
	l := &Lecture{Materials: []Material{{StorageKey: "lectures/a.pdf"}, {}, {StorageKey: "lectures/b.ppt"}}}
	assert.Equal(t, []string{"lectures/a.pdf", "lectures/b.ppt"}, l.StorageKeys())
}

func TestYoutubeEmbedLink(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10": "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://m.youtube.com/watch?v=abc":                "https://www.youtube.com/embed/abc",
		"https://youtu.be/abc?si=x":                        "https://www.youtube.com/embed/abc",
		"https://www.youtube.com/shorts/abc":               "https://www.youtube.com/embed/abc",
		"https://www.youtube.com/embed/abc":                "https://www.youtube.com/embed/abc",
		"  ":                                               "",
		"https://vimeo.com/123":                            "https://vimeo.com/123",
		"not a url":                                        "not a url",
	}
	for in, want := range cases {
		assert.Equal(t, want, YoutubeEmbedLink(in), in)
	}
}

func TestDriveEmbedLink(t *testing.T) {
	cases := map[string]string{
		"https://drive.google.com/file/d/FILE/view":    "https://drive.google.com/file/d/FILE/preview",
		"https://drive.google.com/file/d/FILE/preview": "https://drive.google.com/file/d/FILE/preview",
		"https://drive.google.com/open?id=FILE":        "https://drive.google.com/file/d/FILE/preview",
		"https://drive.google.com/drive/folders/F":     "https://drive.google.com/drive/folders/F",
		"https://example.com/file/d/FILE/view":         "https://example.com/file/d/FILE/view",
	}
	for in, want := range cases {
		assert.Equal(t, want, DriveEmbedLink(in), in)
	}
}
