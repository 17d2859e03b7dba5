package onboarding_test

import (
	"testing"
	"time"

	"go-recruit/internal/onboarding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newChecklist() *onboarding.Checklist {
	return &onboarding.Checklist{
		ID:          uuid.New(),
		ApplicantID: uuid.New(),
		StartDate:   time.Now(),
	}
}

func completeItems(cl *onboarding.Checklist, now time.Time, keys ...string) {
	for _, key := range keys {
		cl.SetItem(key, true, "", now)
	}
}

func TestChecklist_CompletionPercentage(t *testing.T) {
	now := time.Now()

	// 5 item diskrit: persentase hanya boleh 0,20,40,60,80,100
	expected := []int{0, 20, 40, 60, 80, 100}

	cl := newChecklist()
	assert.Equal(t, 0, cl.CompletedCount())
	assert.Equal(t, expected[0], cl.CompletionPercentage())

	for i, key := range onboarding.ItemKeys {
		cl.SetItem(key, true, "", now)
		assert.Equal(t, i+1, cl.CompletedCount())
		assert.Equal(t, expected[i+1], cl.CompletionPercentage())
	}
}

func TestChecklist_SetItem(t *testing.T) {
	t.Run("default actor Manual", func(t *testing.T) {
		cl := newChecklist()
		now := time.Now()

		ok := cl.SetItem(onboarding.ItemEquipmentLogistics, true, "", now)

		assert.True(t, ok)
		assert.True(t, cl.EquipmentLogistics)
		assert.Equal(t, onboarding.DefaultManualActor, cl.EquipmentLogisticsCompletedBy)
		assert.NotNil(t, cl.EquipmentLogisticsCompletedAt)
	})

	t.Run("explicit actor", func(t *testing.T) {
		cl := newChecklist()

		cl.SetItem(onboarding.ItemTrainingHR2, true, "Jane", time.Now())

		assert.Equal(t, "Jane", cl.TrainingHR2CompletedBy)
	})

	t.Run("re-complete adalah no-op", func(t *testing.T) {
		cl := newChecklist()
		first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		second := first.Add(48 * time.Hour)

		cl.SetItem(onboarding.ItemTrainingHR2, true, "Jane", first)
		cl.SetItem(onboarding.ItemTrainingHR2, true, "Bob", second)

		// completed_at dan completed_by tidak boleh bergeser
		assert.Equal(t, first, *cl.TrainingHR2CompletedAt)
		assert.Equal(t, "Jane", cl.TrainingHR2CompletedBy)
	})

	t.Run("un-complete membersihkan state", func(t *testing.T) {
		cl := newChecklist()
		now := time.Now()

		cl.SetItemAuto(onboarding.ItemScheduleHR3, "HR3 System", now)
		cl.SetItem(onboarding.ItemScheduleHR3, false, "", now)

		assert.False(t, cl.ScheduleHR3)
		assert.Nil(t, cl.ScheduleHR3CompletedAt)
		assert.Empty(t, cl.ScheduleHR3CompletedBy)
		assert.False(t, cl.ScheduleHR3Auto)
	})

	t.Run("unknown key ditolak", func(t *testing.T) {
		cl := newChecklist()

		ok := cl.SetItem("background_check", true, "", time.Now())

		assert.False(t, ok)
	})
}

func TestChecklist_DepartmentItemKey(t *testing.T) {
	cases := map[string]string{
		"hr2": onboarding.ItemTrainingHR2,
		"hr3": onboarding.ItemScheduleHR3,
		"hr4": onboarding.ItemOfferCompensationHR4,
	}
	for dept, want := range cases {
		key, ok := onboarding.DepartmentItemKey(dept)
		assert.True(t, ok, dept)
		assert.Equal(t, want, key)
	}

	_, ok := onboarding.DepartmentItemKey("hr5")
	assert.False(t, ok)
}

func TestChecklist_SetItemAuto(t *testing.T) {
	t.Run("hr3 hanya menyentuh schedule_hr3", func(t *testing.T) {
		cl := newChecklist()
		now := time.Now()

		key, _ := onboarding.DepartmentItemKey("hr3")
		ok := cl.SetItemAuto(key, "HR3 System", now)

		assert.True(t, ok)
		assert.True(t, cl.ScheduleHR3)
		assert.True(t, cl.ScheduleHR3Auto)
		assert.Equal(t, "HR3 System", cl.ScheduleHR3CompletedBy)

		assert.False(t, cl.TrainingHR2)
		assert.False(t, cl.OfferCompensationHR4)
		assert.False(t, cl.DocumentsAdmin)
		assert.False(t, cl.EquipmentLogistics)
	})

	t.Run("equipment tidak punya jalur auto", func(t *testing.T) {
		cl := newChecklist()

		ok := cl.SetItemAuto(onboarding.ItemEquipmentLogistics, "Logistics", time.Now())

		assert.False(t, ok)
		assert.False(t, cl.EquipmentLogistics)
	})

	t.Run("item manual yang sudah complete hanya diberi flag auto", func(t *testing.T) {
		cl := newChecklist()
		first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		cl.SetItem(onboarding.ItemTrainingHR2, true, "Jane", first)
		cl.SetItemAuto(onboarding.ItemTrainingHR2, "HR2 System", first.Add(time.Hour))

		assert.Equal(t, first, *cl.TrainingHR2CompletedAt)
		assert.Equal(t, "Jane", cl.TrainingHR2CompletedBy)
		assert.True(t, cl.TrainingHR2Auto)
	})
}

func TestChecklist_RunCompletionCheck(t *testing.T) {
	t.Run("belum lengkap adalah no-op", func(t *testing.T) {
		cl := newChecklist()
		now := time.Now()
		completeItems(cl, now, onboarding.ItemKeys[:4]...)

		fired := cl.RunCompletionCheck(now)

		assert.False(t, fired)
		assert.False(t, cl.AllCompleted)
		assert.Nil(t, cl.CompletedAt)
	})

	t.Run("lima item memicu transisi sekali", func(t *testing.T) {
		cl := newChecklist()
		first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		completeItems(cl, first, onboarding.ItemKeys...)

		fired := cl.RunCompletionCheck(first)
		assert.True(t, fired)
		assert.True(t, cl.AllCompleted)
		assert.Equal(t, first, *cl.CompletedAt)

		// Panggilan kedua tidak boleh memicu ulang atau menggeser timestamp
		firedAgain := cl.RunCompletionCheck(first.Add(time.Hour))
		assert.False(t, firedAgain)
		assert.Equal(t, first, *cl.CompletedAt)
	})
}

func TestChecklist_RollbackDocumentsAdmin(t *testing.T) {
	cl := newChecklist()
	now := time.Now()
	completeItems(cl, now, onboarding.ItemKeys...)
	cl.RunCompletionCheck(now)
	assert.True(t, cl.AllCompleted)

	cl.RollbackDocumentsAdmin()

	// documents_admin kosong dan all_completed dipaksa false,
	// empat item lainnya tidak disentuh
	assert.False(t, cl.DocumentsAdmin)
	assert.Nil(t, cl.DocumentsAdminCompletedAt)
	assert.False(t, cl.AllCompleted)
	assert.Nil(t, cl.CompletedAt)
	assert.True(t, cl.TrainingHR2)
	assert.True(t, cl.OfferCompensationHR4)
	assert.True(t, cl.ScheduleHR3)
	assert.True(t, cl.EquipmentLogistics)
	assert.Equal(t, 80, cl.CompletionPercentage())
}

func TestChecklist_Items(t *testing.T) {
	cl := newChecklist()
	cl.HasAccount = true
	cl.SetItemAuto(onboarding.ItemTrainingHR2, "HR2 System", time.Now())

	items := cl.Items()

	assert.Len(t, items, 5)
	assert.Equal(t, onboarding.ItemKeys, []string{
		items[0].Key, items[1].Key, items[2].Key, items[3].Key, items[4].Key,
	})
	for _, item := range items {
		assert.True(t, item.Required)
		assert.NotEmpty(t, item.Task)
		assert.NotEmpty(t, item.Department)
	}

	assert.True(t, items[0].Completed)
	assert.True(t, items[0].AutoChecked)

	// has_account hanya muncul di documents_admin
	assert.Nil(t, items[0].HasAccount)
	if assert.NotNil(t, items[3].HasAccount) {
		assert.True(t, *items[3].HasAccount)
	}
}
