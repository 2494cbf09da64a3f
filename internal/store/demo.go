package store

import "github.com/sakif/codepocket/internal/model"

// demoSnippets returns the built-in demonstration snippets shown when no
// persisted collection exists (or the persisted blob is unreadable). The UI is
// never empty on first run. Timestamps are assigned at load time so the demo
// records sort as freshly created.
func demoSnippets(now int64) []model.Snippet {
	return []model.Snippet{
		{
			ID:          "1",
			Title:       "React useLocalStorage Hook",
			Description: "A custom hook for persisting state to localStorage.",
			Code: `function useLocalStorage(key, initialValue) {
  const [storedValue, setStoredValue] = useState(() => {
    try {
      const item = window.localStorage.getItem(key);
      return item ? JSON.parse(item) : initialValue;
    } catch (error) {
      return initialValue;
    }
  });

  const setValue = value => {
    setStoredValue(value);
    window.localStorage.setItem(key, JSON.stringify(value));
  };

  return [storedValue, setValue];
}`,
			Language:  "javascript",
			Tags:      []string{"react", "hook", "storage"},
			Folder:    "Personal",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "2",
			Title:       "TypeScript Debounce Function",
			Description: "A reusable debounce utility function with TypeScript generics.",
			Code: `function debounce<T extends (...args: any[]) => any>(
  func: T,
  wait: number
): (...args: Parameters<T>) => void {
  let timeout: NodeJS.Timeout | null = null;

  return function executedFunction(...args: Parameters<T>) {
    const later = () => {
      timeout = null;
      func(...args);
    };

    if (timeout) {
      clearTimeout(timeout);
    }
    timeout = setTimeout(later, wait);
  };
}

// Usage
const debouncedSearch = debounce((query: string) => {
  console.log("Searching for:", query);
}, 300);`,
			Language:  "typescript",
			Tags:      []string{"typescript", "utility", "performance"},
			Folder:    "Work",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "3",
			Title:       "Python Context Manager",
			Description: "A custom context manager for file operations with error handling.",
			Code: `from contextlib import contextmanager
from typing import Generator

@contextmanager
def safe_file_operation(filepath: str, mode: str = 'r') -> Generator:
    """Context manager for safe file operations."""
    file = None
    try:
        file = open(filepath, mode)
        yield file
    except FileNotFoundError:
        print(f"File {filepath} not found")
        raise
    except IOError as e:
        print(f"IO error: {e}")
        raise
    finally:
        if file:
            file.close()

# Usage
with safe_file_operation('data.txt', 'r') as f:
    content = f.read()
    print(content)`,
			Language:  "python",
			Tags:      []string{"python", "context-manager", "file-handling"},
			Folder:    "Learning",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
