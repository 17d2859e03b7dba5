package onboarding

import (
	"math"
	"time"
)

// Lima item key baku. Payload auto-check dari departemen lain bergantung
// pada nama-nama ini, jangan diubah.
const (
	ItemTrainingHR2          = "training_hr2"
	ItemOfferCompensationHR4 = "offer_compensation_hr4"
	ItemScheduleHR3          = "schedule_hr3"
	ItemDocumentsAdmin       = "documents_admin"
	ItemEquipmentLogistics   = "equipment_logistics"
)

const totalItems = 5

// DefaultManualActor dipakai saat completed_by tidak dikirim
const DefaultManualActor = "Manual"

// AccountCreatedActor menandai item documents_admin yang di-set otomatis
// saat user account dibuat
const AccountCreatedActor = "System - Account Created"

// departmentItemMap memetakan kode departemen external ke item key
var departmentItemMap = map[string]string{
	"hr2": ItemTrainingHR2,
	"hr3": ItemScheduleHR3,
	"hr4": ItemOfferCompensationHR4,
}

// DepartmentItemKey mengembalikan item key untuk kode departemen (hr2/hr3/hr4)
func DepartmentItemKey(department string) (string, bool) {
	key, ok := departmentItemMap[department]
	return key, ok
}

type itemLabel struct {
	task       string
	department string
}

var itemLabels = map[string]itemLabel{
	ItemTrainingHR2:          {"Training", "HR2 - Training"},
	ItemOfferCompensationHR4: {"Offer acceptance & Compensation Data entry", "HR4 - Payroll"},
	ItemScheduleHR3:          {"Get the Schedule of work", "HR3 - Attendance"},
	ItemDocumentsAdmin:       {"Create user account and archive documents", "Administrative"},
	ItemEquipmentLogistics:   {"ID, Uniform, tools", "Logistics"},
}

// ItemKeys dalam urutan tampilan
var ItemKeys = []string{
	ItemTrainingHR2,
	ItemOfferCompensationHR4,
	ItemScheduleHR3,
	ItemDocumentsAdmin,
	ItemEquipmentLogistics,
}

type itemState struct {
	completed   *bool
	completedAt **time.Time
	completedBy *string
	auto        *bool // nil untuk item tanpa jalur auto
}

func (c *Checklist) itemState(key string) (itemState, bool) {
	switch key {
	case ItemTrainingHR2:
		return itemState{&c.TrainingHR2, &c.TrainingHR2CompletedAt, &c.TrainingHR2CompletedBy, &c.TrainingHR2Auto}, true
	case ItemOfferCompensationHR4:
		return itemState{&c.OfferCompensationHR4, &c.OfferCompensationHR4CompletedAt, &c.OfferCompensationHR4CompletedBy, &c.OfferCompensationHR4Auto}, true
	case ItemScheduleHR3:
		return itemState{&c.ScheduleHR3, &c.ScheduleHR3CompletedAt, &c.ScheduleHR3CompletedBy, &c.ScheduleHR3Auto}, true
	case ItemDocumentsAdmin:
		return itemState{&c.DocumentsAdmin, &c.DocumentsAdminCompletedAt, &c.DocumentsAdminCompletedBy, &c.DocumentsAdminAuto}, true
	case ItemEquipmentLogistics:
		return itemState{&c.EquipmentLogistics, &c.EquipmentLogisticsCompletedAt, &c.EquipmentLogisticsCompletedBy, nil}, true
	}
	return itemState{}, false
}

// SetItem mengubah satu item secara manual. Men-set item yang sudah complete
// adalah no-op supaya completed_at tidak bergeser dan cascade tidak terpicu ulang.
func (c *Checklist) SetItem(key string, completed bool, by string, now time.Time) bool {
	st, ok := c.itemState(key)
	if !ok {
		return false
	}

	if completed {
		if *st.completed {
			return true
		}
		if by == "" {
			by = DefaultManualActor
		}
		*st.completed = true
		at := now
		*st.completedAt = &at
		*st.completedBy = by
		return true
	}

	*st.completed = false
	*st.completedAt = nil
	*st.completedBy = ""
	if st.auto != nil {
		*st.auto = false
	}
	return true
}

// SetItemAuto memaksa satu item complete atas nama departemen external.
func (c *Checklist) SetItemAuto(key string, by string, now time.Time) bool {
	st, ok := c.itemState(key)
	if !ok || st.auto == nil {
		return false
	}

	if !*st.completed {
		*st.completed = true
		at := now
		*st.completedAt = &at
		*st.completedBy = by
	}
	*st.auto = true
	return true
}

// RollbackDocumentsAdmin adalah jalur rollback saat user account dihapus:
// documents_admin dikosongkan dan all_completed dipaksa false tanpa melihat
// keadaan empat item lainnya.
func (c *Checklist) RollbackDocumentsAdmin() {
	c.DocumentsAdmin = false
	c.DocumentsAdminCompletedAt = nil
	c.DocumentsAdminCompletedBy = ""
	c.DocumentsAdminAuto = false
	c.AllCompleted = false
	c.CompletedAt = nil
}

func (c *Checklist) CompletedCount() int {
	count := 0
	for _, flag := range []bool{
		c.TrainingHR2,
		c.OfferCompensationHR4,
		c.ScheduleHR3,
		c.DocumentsAdmin,
		c.EquipmentLogistics,
	} {
		if flag {
			count++
		}
	}
	return count
}

func (c *Checklist) CompletionPercentage() int {
	return int(math.Round(float64(c.CompletedCount()) / totalItems * 100))
}

// RunCompletionCheck menandai checklist selesai ketika kelima item true.
// Transisi hanya terjadi sekali: pemanggilan berulang setelah complete
// (atau sebelum lengkap) adalah no-op. Return true saat transisi terjadi,
// pemanggil wajib meng-cascade status applicant ke hired.
func (c *Checklist) RunCompletionCheck(now time.Time) bool {
	if c.AllCompleted || c.CompletedCount() != totalItems {
		return false
	}
	c.AllCompleted = true
	c.CompletedAt = &now
	return true
}

// ItemView adalah descriptor satu item untuk tampilan denormalisasi
type ItemView struct {
	Key         string     `json:"key"`
	Task        string     `json:"task"`
	Department  string     `json:"department"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CompletedBy string     `json:"completed_by,omitempty"`
	AutoChecked bool       `json:"auto_checked"`
	HasAccount  *bool      `json:"has_account,omitempty"`
	Required    bool       `json:"required"`
}

// Items menghasilkan kelima descriptor dalam urutan tampilan.
func (c *Checklist) Items() []ItemView {
	views := make([]ItemView, 0, totalItems)
	for _, key := range ItemKeys {
		st, _ := c.itemState(key)
		v := ItemView{
			Key:         key,
			Task:        itemLabels[key].task,
			Department:  itemLabels[key].department,
			Completed:   *st.completed,
			CompletedAt: *st.completedAt,
			CompletedBy: *st.completedBy,
			Required:    true,
		}
		if st.auto != nil {
			v.AutoChecked = *st.auto
		}
		if key == ItemDocumentsAdmin {
			hasAccount := c.HasAccount
			v.HasAccount = &hasAccount
		}
		views = append(views, v)
	}
	return views
}
