package types

import (
	"encoding/json"
	"testing"
)

func TestStringToPageType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want PageType
	}{
		{
			name: "激活页",
			in:   "activation",
			want: PAGE_TYPE_ACTIVATION,
		},
		{
			name: "大写输入",
			in:   "Agreement",
			want: PAGE_TYPE_AGREEMENT,
		},
		{
			name: "确认页",
			in:   "confirmation",
			want: PAGE_TYPE_CONFIRMATION,
		},
		{
			name: "处理页",
			in:   "processing",
			want: PAGE_TYPE_PROCESSING,
		},
		{
			name: "未知类型",
			in:   "landing",
			want: "",
		},
		{
			name: "空字符串",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringToPageType(tt.in)
			if got != tt.want {
				t.Errorf("StringToPageType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNextPageType(t *testing.T) {
	tests := []struct {
		name string
		in   PageType
		want PageType
	}{
		{
			name: "激活页之后是协议页",
			in:   PAGE_TYPE_ACTIVATION,
			want: PAGE_TYPE_AGREEMENT,
		},
		{
			name: "协议页之后是确认页",
			in:   PAGE_TYPE_AGREEMENT,
			want: PAGE_TYPE_CONFIRMATION,
		},
		{
			name: "确认页之后是处理页",
			in:   PAGE_TYPE_CONFIRMATION,
			want: PAGE_TYPE_PROCESSING,
		},
		{
			name: "最后一页没有下一页",
			in:   PAGE_TYPE_PROCESSING,
			want: "",
		},
		{
			name: "未知类型",
			in:   PageType("landing"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPageType(tt.in)
			if got != tt.want {
				t.Errorf("NextPageType(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPageTypeOrder(t *testing.T) {
	for i, pt := range JourneyPageOrder {
		if got := PageTypeOrder(pt); got != i+1 {
			t.Errorf("PageTypeOrder(%v) = %d, want %d", pt, got, i+1)
		}
	}

	if got := PageTypeOrder(PageType("landing")); got != 0 {
		t.Errorf("PageTypeOrder(unknown) = %d, want 0", got)
	}
}

func TestDefaultPageContent(t *testing.T) {
	for _, pt := range JourneyPageOrder {
		if _, ok := DefaultPageTitles[pt]; !ok {
			t.Errorf("DefaultPageTitles missing type %v", pt)
		}
		if _, ok := DefaultPageTitlesCN[pt]; !ok {
			t.Errorf("DefaultPageTitlesCN missing type %v", pt)
		}

		content := DefaultPageContent(DefaultPageTitles[pt])
		if len(content) == 0 {
			t.Fatalf("DefaultPageContent(%v) returned empty content", pt)
		}

		var doc map[string]any
		if err := json.Unmarshal(content, &doc); err != nil {
			t.Fatalf("DefaultPageContent(%v) is not valid json: %v", pt, err)
		}
	}
}

func TestPageContentScan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    string
		wantErr bool
	}{
		{
			name: "字节输入",
			src:  []byte(`{"blocks":[]}`),
			want: `{"blocks":[]}`,
		},
		{
			name: "字符串输入",
			src:  `{"blocks":[]}`,
			want: `{"blocks":[]}`,
		},
		{
			name: "空值",
			src:  nil,
			want: "",
		},
		{
			name:    "不支持的类型",
			src:     123,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var content PageContent
			err := content.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Scan() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if string(content) != tt.want {
				t.Errorf("Scan() = %q, want %q", string(content), tt.want)
			}
		})
	}
}
