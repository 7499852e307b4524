package model

// Project is a corporation's project master.
type Project struct {
	BaseModel
	CorporationUUID string `gorm:"size:36;not null;index;uniqueIndex:idx_project_corp_code" json:"corporation_uuid"`
	ProjectName     string `gorm:"size:255;not null" json:"project_name"`
	ProjectID       string `gorm:"column:project_id;size:50;not null;uniqueIndex:idx_project_corp_code" json:"project_id"`
	Description     string `gorm:"type:text" json:"description"`
	Status          string `gorm:"size:16;not null;default:ACTIVE" json:"status"`
}

func (Project) TableName() string { return "projects" }

// ItemType belongs to a project. ProjectName is filled by the read join and
// is not a column.
type ItemType struct {
	BaseModel
	CorporationUUID string   `gorm:"size:36;not null;index" json:"corporation_uuid"`
	ProjectUUID     string   `gorm:"size:36;not null;index;uniqueIndex:idx_item_type_project_name" json:"project_uuid"`
	Project         *Project `gorm:"foreignKey:ProjectUUID;references:UUID" json:"-"`
	ItemTypeName    string   `gorm:"column:item_type;size:255;not null;uniqueIndex:idx_item_type_project_name" json:"item_type"`
	ShortName       string   `gorm:"size:50;not null" json:"short_name"`
	IsActive        bool     `gorm:"not null" json:"is_active"`

	ProjectName string `gorm:"->;-:migration" json:"project_name"`
}

func (ItemType) TableName() string { return "item_types" }
