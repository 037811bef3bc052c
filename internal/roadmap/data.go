package roadmap

// Resources 资源目录，顺序即对外列表顺序
var Resources = []Resource{
	{ID: "w3_python_getstarted", Title: "Python Setup - W3Schools", URL: "https://www.w3schools.com/python/python_getstarted.asp", Type: "text"},
	{ID: "jt_cpp_tutorial", Title: "C++ Setup - JavaTpoint", URL: "https://www.javatpoint.com/cpp-tutorial", Type: "text"},
	{ID: "w3_python_syntax", Title: "Python Syntax - W3Schools", URL: "https://www.w3schools.com/python/python_syntax.asp", Type: "text"},
	{ID: "programiz_cpp_basics", Title: "C++ Basics - Programiz", URL: "https://www.programiz.com/cpp-programming", Type: "text"},
	{ID: "w3_python_user_input", Title: "Python I/O - W3Schools", URL: "https://www.w3schools.com/python/python_user_input.asp", Type: "text"},
	{ID: "jt_cpp_io", Title: "C++ I/O - JavaTpoint", URL: "https://www.javatpoint.com/cpp-basic-input-output", Type: "text"},
	{ID: "w3_python_functions", Title: "Python Functions - W3Schools", URL: "https://www.w3schools.com/python/python_functions.asp", Type: "text"},
	{ID: "tutsp_cpp_functions", Title: "C++ Functions - TutorialsPoint", URL: "https://www.tutorialspoint.com/cplusplus/cpp_functions.htm", Type: "text"},
	{ID: "w3_python_lists", Title: "Python Lists - W3Schools", URL: "https://www.w3schools.com/python/python_lists.asp", Type: "text"},
	{ID: "programiz_cpp_arrays", Title: "C++ Arrays - Programiz", URL: "https://www.programiz.com/cpp-programming/arrays", Type: "text"},
	{ID: "w3_dsa_arrays", Title: "Arrays - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_arrays.php", Type: "text"},
	{ID: "w3_python_strings", Title: "Strings - W3Schools", URL: "https://www.w3schools.com/python/python_strings.asp", Type: "text"},
	{ID: "jt_string_ds", Title: "String DS - JavaTpoint", URL: "https://www.javatpoint.com/string-in-data-structure", Type: "text"},
	{ID: "w3_ll", Title: "Linked Lists - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_data_linkedlists.php", Type: "text"},
	{ID: "jt_singly_ll", Title: "Singly LL - JavaTpoint", URL: "https://www.javatpoint.com/singly-linked-list", Type: "text"},
	{ID: "programiz_ll", Title: "LL Operations - Programiz", URL: "https://www.programiz.com/dsa/linked-list", Type: "text"},
	{ID: "tutsp_ll_algos", Title: "LL Algorithms - TutorialsPoint", URL: "https://www.tutorialspoint.com/data_structures_algorithms/linked_list_algorithms.htm", Type: "text"},
	{ID: "w3_stacks", Title: "Stacks - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_data_stacks.php", Type: "text"},
	{ID: "jt_stack", Title: "Stack Tutorial - JavaTpoint", URL: "https://www.javatpoint.com/data-structure-stack", Type: "text"},
	{ID: "programiz_stack", Title: "Stack Applications - Programiz", URL: "https://www.programiz.com/dsa/stack", Type: "text"},
	{ID: "tutsp_stack_algo", Title: "Stack Algorithm - TutorialsPoint", URL: "https://www.tutorialspoint.com/data_structures_algorithms/stack_algorithm.htm", Type: "text"},
	{ID: "w3_queues", Title: "Queues - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_data_queues.php", Type: "text"},
	{ID: "jt_queue", Title: "Queue - JavaTpoint", URL: "https://www.javatpoint.com/data-structure-queue", Type: "text"},
	{ID: "w3_trees", Title: "Trees - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_data_trees.php", Type: "text"},
	{ID: "jt_binary_tree", Title: "Binary Trees - JavaTpoint", URL: "https://www.javatpoint.com/binary-tree", Type: "text"},
	{ID: "programiz_tree_traversal", Title: "Tree Traversal - Programiz", URL: "https://www.programiz.com/dsa/tree-traversal", Type: "text"},
	{ID: "tutsp_tree_traversal", Title: "Tree Traversal - TutorialsPoint", URL: "https://www.tutorialspoint.com/data_structures_algorithms/tree_traversal.htm", Type: "text"},
	{ID: "w3_bfs", Title: "BFS - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_algo_graphs_bfs.php", Type: "text"},
	{ID: "jt_tree_ds", Title: "Tree DS - JavaTpoint", URL: "https://www.javatpoint.com/tree-data-structure", Type: "text"},
	{ID: "programiz_binary_tree", Title: "Binary Tree Ops - Programiz", URL: "https://www.programiz.com/dsa/binary-tree", Type: "text"},
	{ID: "jt_doubly_ll", Title: "Doubly LL - JavaTpoint", URL: "https://www.javatpoint.com/doubly-linked-list", Type: "text"},
	{ID: "programiz_circular_ll", Title: "Circular LL - Programiz", URL: "https://www.programiz.com/dsa/circular-linked-list", Type: "text"},
	{ID: "programiz_two_pointers", Title: "Two Pointers - Programiz", URL: "https://www.programiz.com/dsa/two-pointers-technique", Type: "text"},
	{ID: "programiz_priority_queue", Title: "Priority Queue - Programiz", URL: "https://www.programiz.com/dsa/priority-queue", Type: "text"},
	{ID: "tutsp_sliding_window", Title: "Sliding Window - TutorialsPoint", URL: "https://www.tutorialspoint.com/sliding-window-technique", Type: "text"},
	{ID: "w3_dsa_exercises", Title: "DSA Exercises - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_exercises.php", Type: "practice"},
	{ID: "w3_reverse_ll_examples", Title: "Reverse LL Examples - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_linkedlists_reverse.php", Type: "text"},
	{ID: "w3_ll_exercises", Title: "LL Exercises - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_exercises_linkedlists.php", Type: "practice"},
	{ID: "w3_stack_exercises", Title: "Stack Exercises - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_exercises_stacks.php", Type: "practice"},
	{ID: "w3_tree_exercises", Title: "Tree Exercises - W3Schools", URL: "https://www.w3schools.com/dsa/dsa_exercises_trees.php", Type: "practice"},

	{ID: "galles_array_vis", Title: "Array Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/Array.html", Type: "interactive"},
	{ID: "galles_bst", Title: "BST Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/BST.html", Type: "interactive"},
	{ID: "galles_heap", Title: "Heap Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/Heap.html", Type: "interactive"},
	{ID: "galles_open_hash", Title: "Hash Table Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/OpenHash.html", Type: "interactive"},
	{ID: "galles_dfs", Title: "DFS Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/DFS.html", Type: "interactive"},
	{ID: "galles_bfs", Title: "BFS Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/BFS.html", Type: "interactive"},
	{ID: "galles_dijkstra", Title: "Dijkstra Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/Dijkstra.html", Type: "interactive"},
	{ID: "galles_sorting", Title: "Sorting Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/ComparisonSort.html", Type: "interactive"},
	{ID: "galles_nqueens", Title: "N-Queens Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/RecQueens.html", Type: "interactive"},
	{ID: "galles_trie", Title: "Trie Visualization", URL: "https://www.cs.usfca.edu/~galles/visualization/Trie.html", Type: "interactive"},
	{ID: "visualgo_avl", Title: "AVL Trees - VisuAlgo", URL: "https://visualgo.net/en/bst", Type: "interactive"},
	{ID: "visualgo_sssp", Title: "SSSP - VisuAlgo", URL: "https://visualgo.net/en/sssp", Type: "interactive"},
	{ID: "visualgo_mst", Title: "MST - VisuAlgo", URL: "https://visualgo.net/en/mst", Type: "interactive"},
	{ID: "visualgo_sorting", Title: "Sorting - VisuAlgo", URL: "https://visualgo.net/en/sorting", Type: "interactive"},
	{ID: "visualgo_graphds", Title: "Graph DS - VisuAlgo", URL: "https://visualgo.net/en/graphds", Type: "interactive"},
	{ID: "visualgo_ufds", Title: "Union-Find - VisuAlgo", URL: "https://visualgo.net/en/ufds", Type: "interactive"},

	{ID: "yt_neetcode_two_pointers", Title: "Two Pointers - NeetCode", URL: "https://www.youtube.com/watch?v=jzZsG8n2R9A", Type: "video"},
	{ID: "yt_abdul_bari_bst", Title: "BST - Abdul Bari", URL: "https://www.youtube.com/watch?v=pYT9F8_LFTM", Type: "video"},
	{ID: "yt_neetcode_validate_bst", Title: "Validate BST - NeetCode", URL: "https://www.youtube.com/watch?v=s6ATEkipzow", Type: "video"},
	{ID: "yt_abdul_bari_heap", Title: "Heap - Abdul Bari", URL: "https://www.youtube.com/watch?v=HqPJF2L5h9U", Type: "video"},
	{ID: "yt_csdojo_hash", Title: "Hash Tables - CS Dojo", URL: "https://www.youtube.com/watch?v=shs0KM3wKv8", Type: "video"},
	{ID: "yt_csdojo_graph_theory", Title: "Graph Theory - CS Dojo", URL: "https://www.youtube.com/watch?v=gXgEDyodOJU", Type: "video"},
	{ID: "yt_abdul_bari_dijkstra", Title: "Dijkstra - Abdul Bari", URL: "https://www.youtube.com/watch?v=XB4MIexjvY0", Type: "video"},
	{ID: "yt_mycodeschool_merge", Title: "Merge Sort - mycodeschool", URL: "https://www.youtube.com/watch?v=JSceec-wEyw", Type: "video"},
	{ID: "yt_neetcode_binary_search", Title: "Binary Search - NeetCode", URL: "https://www.youtube.com/watch?v=s4DPM8ct1pI", Type: "video"},
	{ID: "yt_csdojo_recursion", Title: "Recursion - CS Dojo", URL: "https://www.youtube.com/watch?v=KEEKn7Me-ms", Type: "video"},
	{ID: "yt_neetcode_backtracking", Title: "Backtracking - NeetCode", URL: "https://www.youtube.com/watch?v=pfiQ_PS1g8E", Type: "video"},
	{ID: "yt_neetcode_dp", Title: "DP Fundamentals - NeetCode", URL: "https://www.youtube.com/watch?v=oBt53YbR9Kk", Type: "video"},
	{ID: "yt_knapsack", Title: "Knapsack Problem", URL: "https://www.youtube.com/watch?v=8LusJS5-AGo", Type: "video"},
	{ID: "yt_bit_manip", Title: "Bit Manipulation", URL: "https://www.youtube.com/watch?v=NLKQEOgBAnw", Type: "video"},

	{ID: "gfg_sliding_window", Title: "Sliding Window - GFG", URL: "https://www.geeksforgeeks.org/window-sliding-technique/", Type: "text"},
	{ID: "gfg_reverse_ll", Title: "Reverse LL - GFG", URL: "https://www.geeksforgeeks.org/reverse-a-linked-list/", Type: "text"},
	{ID: "gfg_deque_intro", Title: "Deque Introduction - GFG", URL: "https://www.geeksforgeeks.org/deque-set-1-introduction-applications/", Type: "text"},
	{ID: "gfg_tree_traversals", Title: "Tree Traversals - GFG", URL: "https://www.geeksforgeeks.org/tree-traversals-inorder-preorder-and-postorder/", Type: "text"},
	{ID: "gfg_bst", Title: "BST Operations - GFG", URL: "https://www.geeksforgeeks.org/binary-search-tree-data-structure/", Type: "text"},
	{ID: "gfg_binary_heap", Title: "Binary Heap - GFG", URL: "https://www.geeksforgeeks.org/binary-heap/", Type: "text"},
	{ID: "gfg_hashing", Title: "Hashing DS - GFG", URL: "https://www.geeksforgeeks.org/hashing-data-structure/", Type: "text"},
	{ID: "gfg_rolling_hash", Title: "Rolling Hash - GFG", URL: "https://www.geeksforgeeks.org/rolling-hash-to-find-lexicographically-smallest-substring/", Type: "text"},
	{ID: "gfg_graph_apps", Title: "Graph Applications - GFG", URL: "https://www.geeksforgeeks.org/applications-of-graph-data-structure/", Type: "text"},
	{ID: "gfg_floyd_warshall", Title: "Floyd-Warshall - GFG", URL: "https://www.geeksforgeeks.org/floyd-warshall-algorithm-dp-16/", Type: "text"},
	{ID: "gfg_toposort", Title: "Topological Sort - GFG", URL: "https://www.geeksforgeeks.org/topological-sorting/", Type: "text"},
	{ID: "gfg_ternary_search", Title: "Ternary Search - GFG", URL: "https://www.geeksforgeeks.org/ternary-search/", Type: "text"},
	{ID: "gfg_lcs", Title: "LCS - GFG", URL: "https://www.geeksforgeeks.org/longest-common-subsequence-dp-4/", Type: "text"},
	{ID: "gfg_greedy", Title: "Greedy Algorithms - GFG", URL: "https://www.geeksforgeeks.org/greedy-algorithms/", Type: "text"},

	{ID: "lc_1_two_sum", Title: "Two Sum - LeetCode", URL: "https://leetcode.com/problems/two-sum/", Type: "practice"},
	{ID: "lc_206_reverse_ll", Title: "Reverse LL - LeetCode", URL: "https://leetcode.com/problems/reverse-linked-list/", Type: "practice"},
	{ID: "lc_20_valid_parentheses", Title: "Valid Parentheses - LeetCode", URL: "https://leetcode.com/problems/valid-parentheses/", Type: "practice"},
	{ID: "lc_104_max_depth", Title: "Max Depth - LeetCode", URL: "https://leetcode.com/problems/maximum-depth-of-binary-tree/", Type: "practice"},
	{ID: "lc_98_validate_bst", Title: "Validate BST - LeetCode", URL: "https://leetcode.com/problems/validate-binary-search-tree/", Type: "practice"},
	{ID: "lc_235_lca_bst", Title: "LCA BST - LeetCode", URL: "https://leetcode.com/problems/lowest-common-ancestor-of-a-binary-search-tree/", Type: "practice"},
	{ID: "lc_215_kth_largest", Title: "Kth Largest - LeetCode", URL: "https://leetcode.com/problems/kth-largest-element-in-an-array/", Type: "practice"},
	{ID: "lc_23_merge_k_sorted", Title: "Merge K Lists - LeetCode", URL: "https://leetcode.com/problems/merge-k-sorted-lists/", Type: "practice"},
	{ID: "lc_49_group_anagrams", Title: "Group Anagrams - LeetCode", URL: "https://leetcode.com/problems/group-anagrams/", Type: "practice"},
	{ID: "lc_200_islands", Title: "Number of Islands - LeetCode", URL: "https://leetcode.com/problems/number-of-islands/", Type: "practice"},
	{ID: "lc_133_clone_graph", Title: "Clone Graph - LeetCode", URL: "https://leetcode.com/problems/clone-graph/", Type: "practice"},
	{ID: "lc_78_subsets", Title: "Subsets - LeetCode", URL: "https://leetcode.com/problems/subsets/", Type: "practice"},
	{ID: "lc_46_permutations", Title: "Permutations - LeetCode", URL: "https://leetcode.com/problems/permutations/", Type: "practice"},
	{ID: "lc_300_lis", Title: "LIS - LeetCode", URL: "https://leetcode.com/problems/longest-increasing-subsequence/", Type: "practice"},

	{ID: "python_heapq", Title: "Python heapq", URL: "https://docs.python.org/3/library/heapq.html", Type: "text"},
	{ID: "py_dict", Title: "Python Dictionaries", URL: "https://docs.python.org/3/tutorial/datastructures.html#dictionaries", Type: "text"},
	{ID: "pythontutor", Title: "Python Tutor", URL: "http://pythontutor.com", Type: "interactive"},
	{ID: "leetcode_dp_patterns", Title: "DP Patterns", URL: "https://leetcode.com/discuss/general-discussion/458695/dynamic-programming-patterns", Type: "practice"},
	{ID: "system_design_primer", Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer", Type: "text"},
}

// Weeks 14周学习计划
var Weeks = []Week{
	{
		Week:  1,
		Title: "Foundation & Environment",
		Goal:  "Set up development environment and basic programming concepts",
		Project: Project{
			Title:       "Scientific Calculator",
			Description: "Build a calculator with basic and advanced operations",
			Skills:      []string{"Arrays", "Functions", "Error handling"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Environment Setup", Activities: "Install Python/C++, Git, IDE setup", Resources: []string{"w3_python_getstarted", "jt_cpp_tutorial"}, TimeEstimate: 120},
			{Day: "Tuesday", Topic: "Basic Syntax", Activities: "Variables, data types, operators", Resources: []string{"w3_python_syntax", "programiz_cpp_basics"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Input/Output", Activities: "File I/O, console I/O, formatting", Resources: []string{"w3_python_user_input", "jt_cpp_io"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Functions", Activities: "Function definition, parameters, scope", Resources: []string{"w3_python_functions", "tutsp_cpp_functions"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Arrays/Lists Basics", Activities: "Creation, indexing, basic operations", Resources: []string{"w3_python_lists", "programiz_cpp_arrays"}, TimeEstimate: 90},
			{Day: "Saturday", Topic: "Project Start: Scientific Calculator", Activities: "Plan features, basic arithmetic", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Scientific Calculator", Activities: "Advanced operations, error handling", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  2,
		Title: "Arrays & String Mastery",
		Goal:  "Master array operations and string manipulation",
		Project: Project{
			Title:       "Text Analyzer",
			Description: "Build a text analysis tool with word frequency and pattern detection",
			Skills:      []string{"String processing", "Two pointers", "Sliding window"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Array Operations", Activities: "Iteration, searching, basic algorithms", Resources: []string{"w3_dsa_arrays", "galles_array_vis"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Two Pointers Technique", Activities: "Two Sum, reverse array, palindrome", Resources: []string{"programiz_two_pointers", "yt_neetcode_two_pointers"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "String Processing", Activities: "Manipulation, pattern matching basics", Resources: []string{"w3_python_strings", "jt_string_ds"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Sliding Window", Activities: "Maximum subarray, longest substring", Resources: []string{"gfg_sliding_window", "tutsp_sliding_window"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Key Problems", Activities: "Two Sum, Longest Substring, Valid Palindrome", Resources: []string{"w3_dsa_exercises", "lc_1_two_sum"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Text Analyzer", Activities: "Word count, frequency analysis", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Text Analyzer", Activities: "Pattern detection, statistics", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  3,
		Title: "Linked Lists Deep Dive",
		Goal:  "Master linked list operations and applications",
		Project: Project{
			Title:       "Music Playlist Manager",
			Description: "Implement a playlist system using linked lists",
			Skills:      []string{"Linked list operations", "Doubly linked lists", "Circular lists"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Linked List Basics", Activities: "Node structure, traversal", Resources: []string{"w3_ll", "jt_singly_ll"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Singly Linked Lists", Activities: "Insert, delete, search operations", Resources: []string{"programiz_ll", "tutsp_ll_algos"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Reverse & Manipulation", Activities: "Reverse list, merge, cycle detection", Resources: []string{"gfg_reverse_ll", "w3_reverse_ll_examples"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Doubly & Circular Lists", Activities: "Advanced variations and use cases", Resources: []string{"jt_doubly_ll", "programiz_circular_ll"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Key Problems", Activities: "Reverse, Merge Two Lists, Cycle Detection", Resources: []string{"w3_ll_exercises", "lc_206_reverse_ll"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Music Playlist Manager", Activities: "Song management using linked lists", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Music Playlist Manager", Activities: "Shuffle, repeat, playlist operations", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  4,
		Title: "Stacks & Queues Applications",
		Goal:  "Understand LIFO/FIFO operations and real-world applications",
		Project: Project{
			Title:       "Code Editor",
			Description: "Build an editor with undo/redo and bracket matching",
			Skills:      []string{"Stack operations", "Expression evaluation", "Queue applications"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Stack Fundamentals", Activities: "LIFO operations, implementation", Resources: []string{"w3_stacks", "jt_stack"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Stack Applications", Activities: "Expression evaluation, parentheses matching", Resources: []string{"programiz_stack", "tutsp_stack_algo"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Queue Fundamentals", Activities: "FIFO operations, circular queues", Resources: []string{"w3_queues", "jt_queue"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Advanced Queues", Activities: "Deque, priority queue introduction", Resources: []string{"gfg_deque_intro", "programiz_priority_queue"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Key Problems", Activities: "Valid Parentheses, Min Stack", Resources: []string{"w3_stack_exercises", "lc_20_valid_parentheses"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Code Editor", Activities: "Undo/redo functionality using stacks", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Code Editor", Activities: "Bracket matching, syntax validation", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  5,
		Title: "Binary Trees Foundation",
		Goal:  "Master tree traversals and basic tree operations",
		Project: Project{
			Title:       "Family Tree",
			Description: "Create a genealogy tree with relationship queries",
			Skills:      []string{"Tree traversals", "DFS/BFS", "Tree properties"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Tree Basics", Activities: "Terminology, node structure", Resources: []string{"w3_trees", "jt_binary_tree"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Tree Traversals (DFS)", Activities: "Preorder, inorder, postorder", Resources: []string{"programiz_tree_traversal", "gfg_tree_traversals"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Level Order (BFS)", Activities: "Breadth-first traversal using queues", Resources: []string{"tutsp_tree_traversal", "w3_bfs"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Tree Properties", Activities: "Height, depth, diameter calculations", Resources: []string{"jt_tree_ds", "programiz_binary_tree"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Key Problems", Activities: "Max Depth, Same Tree, Symmetric Tree", Resources: []string{"w3_tree_exercises", "lc_104_max_depth"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Family Tree", Activities: "Genealogy tree with traversals", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Family Tree", Activities: "Relationship queries, tree visualization", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  6,
		Title: "Binary Search Trees",
		Goal:  "Master BST operations and balanced tree concepts",
		Project: Project{
			Title:       "Student Database",
			Description: "BST-based student record management system",
			Skills:      []string{"BST operations", "Searching", "Tree balancing"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "BST Properties", Activities: "BST invariant, insertion, search", Resources: []string{"galles_bst", "yt_abdul_bari_bst"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "BST Operations", Activities: "Insert, delete, find operations", Resources: []string{"gfg_bst"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "BST Validation", Activities: "Validate BST, range checking", Resources: []string{"yt_neetcode_validate_bst"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Balanced Trees", Activities: "AVL introduction, rotation concepts", Resources: []string{"visualgo_avl"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Key Problems", Activities: "Validate BST, Lowest Common Ancestor", Resources: []string{"lc_98_validate_bst", "lc_235_lca_bst"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Student Database", Activities: "BST-based student record system", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Student Database", Activities: "Search, grade analysis, reporting", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  7,
		Title: "Heaps & Priority Queues",
		Goal:  "Master heap operations and priority-based algorithms",
		Project: Project{
			Title:       "Task Scheduler",
			Description: "Priority-based task management system",
			Skills:      []string{"Heap operations", "Priority queues", "Top-K problems"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Heap Fundamentals", Activities: "Min/max heap properties, heapify", Resources: []string{"galles_heap", "yt_abdul_bari_heap"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Heap Operations", Activities: "Insert, extract, build heap", Resources: []string{"gfg_binary_heap"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Priority Queue", Activities: "Implementation using heaps", Resources: []string{"python_heapq"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Heap Applications", Activities: "Top K elements, median finding", Resources: []string{"lc_215_kth_largest"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Key Problems", Activities: "Kth Largest, Merge K Lists", Resources: []string{"lc_215_kth_largest", "lc_23_merge_k_sorted"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Task Scheduler", Activities: "Priority-based task management", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Task Scheduler", Activities: "Deadline handling, priority queues", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  8,
		Title: "Hashing & Hash Tables",
		Goal:  "Master hash-based data structures and fast lookups",
		Project: Project{
			Title:       "Spell Checker",
			Description: "Hash-based dictionary with word suggestions",
			Skills:      []string{"Hash functions", "Collision handling", "String matching"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Hashing Basics", Activities: "Hash functions, collision handling", Resources: []string{"galles_open_hash", "yt_csdojo_hash"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Hash Table Operations", Activities: "Insert, search, delete with collisions", Resources: []string{"gfg_hashing"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Hash Applications", Activities: "Frequency counting, duplicate detection", Resources: []string{"py_dict"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Advanced Hashing", Activities: "Rolling hash, perfect hashing", Resources: []string{"gfg_rolling_hash"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Key Problems", Activities: "Two Sum, Group Anagrams, Valid Anagram", Resources: []string{"lc_1_two_sum", "lc_49_group_anagrams"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Spell Checker", Activities: "Hash-based dictionary and suggestions", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Spell Checker", Activities: "Edit distance, word suggestions", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  9,
		Title: "Graph Fundamentals",
		Goal:  "Master graph representations and basic algorithms",
		Project: Project{
			Title:       "Social Network",
			Description: "Friend connections and suggestions system",
			Skills:      []string{"Graph traversals", "BFS/DFS", "Connected components"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Graph Basics", Activities: "Representation, adjacency list/matrix", Resources: []string{"visualgo_graphds", "yt_csdojo_graph_theory"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "DFS Implementation", Activities: "Depth-first search, applications", Resources: []string{"galles_dfs"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "BFS Implementation", Activities: "Breadth-first search, shortest path", Resources: []string{"galles_bfs"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Graph Applications", Activities: "Connected components, cycle detection", Resources: []string{"gfg_graph_apps"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Key Problems", Activities: "Number of Islands, Clone Graph", Resources: []string{"lc_200_islands", "lc_133_clone_graph"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Social Network", Activities: "Friend connections using graphs", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Social Network", Activities: "Friend suggestions, mutual connections", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  10,
		Title: "Advanced Graph Algorithms",
		Goal:  "Master shortest path and advanced graph algorithms",
		Project: Project{
			Title:       "GPS Navigation",
			Description: "Route finding and optimization system",
			Skills:      []string{"Dijkstra", "A*", "MST algorithms"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Dijkstra's Algorithm", Activities: "Shortest path in weighted graphs", Resources: []string{"galles_dijkstra", "yt_abdul_bari_dijkstra"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Bellman-Ford", Activities: "Negative weight handling", Resources: []string{"visualgo_sssp"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Floyd-Warshall", Activities: "All-pairs shortest path", Resources: []string{"gfg_floyd_warshall"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "MST Algorithms", Activities: "Kruskal's and Prim's algorithms", Resources: []string{"visualgo_mst"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Topological Sort", Activities: "Ordering in DAGs", Resources: []string{"gfg_toposort"}, TimeEstimate: 90},
			{Day: "Saturday", Topic: "Project Start: GPS Navigation", Activities: "Shortest path finder", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: GPS Navigation", Activities: "Route optimization, traffic handling", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  11,
		Title: "Sorting & Searching Mastery",
		Goal:  "Master all major sorting algorithms and binary search variations",
		Project: Project{
			Title:       "Movie Database",
			Description: "Efficient sorting and searching system",
			Skills:      []string{"Sorting algorithms", "Binary search", "Quick select"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Basic Sorting", Activities: "Bubble, selection, insertion sort", Resources: []string{"galles_sorting"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Merge Sort", Activities: "Divide and conquer approach", Resources: []string{"yt_mycodeschool_merge"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Quick Sort", Activities: "Partitioning and optimization", Resources: []string{"visualgo_sorting"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Binary Search", Activities: "Search variations, bounds", Resources: []string{"yt_neetcode_binary_search"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Advanced Searching", Activities: "Ternary search, exponential search", Resources: []string{"gfg_ternary_search"}, TimeEstimate: 90},
			{Day: "Saturday", Topic: "Project Start: Movie Database", Activities: "Sorting and searching optimization", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Movie Database", Activities: "Multi-criteria sorting, fast queries", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  12,
		Title: "Recursion & Backtracking",
		Goal:  "Master recursive problem-solving and backtracking patterns",
		Project: Project{
			Title:       "Sudoku Solver",
			Description: "Interactive puzzle solver with hints",
			Skills:      []string{"Recursion", "Backtracking", "Constraint solving"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Recursion Basics", Activities: "Base cases, recursive thinking", Resources: []string{"yt_csdojo_recursion"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Recursive Patterns", Activities: "Tree recursion, memoization", Resources: []string{"pythontutor"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Backtracking Intro", Activities: "Template, decision trees", Resources: []string{"yt_neetcode_backtracking"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Classic Problems", Activities: "N-Queens, Sudoku solver", Resources: []string{"galles_nqueens"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "More Backtracking", Activities: "Subsets, permutations, combinations", Resources: []string{"lc_78_subsets", "lc_46_permutations"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Sudoku Solver", Activities: "Interactive puzzle solver", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Sudoku Solver", Activities: "Validation, hints, difficulty levels", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  13,
		Title: "Dynamic Programming",
		Goal:  "Master DP patterns and optimization problems",
		Project: Project{
			Title:       "Investment Calculator",
			Description: "Financial optimization using DP",
			Skills:      []string{"DP patterns", "Optimization", "Memoization"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "DP Fundamentals", Activities: "Memoization vs tabulation", Resources: []string{"yt_neetcode_dp"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Classic DP", Activities: "Fibonacci, climbing stairs, coin change", Resources: []string{"leetcode_dp_patterns"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "String DP", Activities: "LCS, edit distance, palindromes", Resources: []string{"gfg_lcs"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Knapsack Problems", Activities: "0/1 and unbounded knapsack", Resources: []string{"yt_knapsack"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "Advanced DP", Activities: "LIS, maximum subarray, matrix chain", Resources: []string{"lc_300_lis"}, TimeEstimate: 120},
			{Day: "Saturday", Topic: "Project Start: Investment Calculator", Activities: "DP-based financial optimization", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Project Complete: Investment Calculator", Activities: "Portfolio optimization, risk analysis", Resources: []string{}, TimeEstimate: 180},
		},
	},
	{
		Week:  14,
		Title: "Advanced Topics & System Design",
		Goal:  "Integrate all concepts into a comprehensive system",
		Project: Project{
			Title:       "File Compressor & Mini Database",
			Description: "Apply multiple DSA concepts in real systems",
			Skills:      []string{"System design", "Algorithm selection", "Optimization"},
		},
		Days: []Day{
			{Day: "Monday", Topic: "Greedy Algorithms", Activities: "Activity selection, Huffman coding", Resources: []string{"gfg_greedy"}, TimeEstimate: 90},
			{Day: "Tuesday", Topic: "Bit Manipulation", Activities: "Bitwise operations, bit tricks", Resources: []string{"yt_bit_manip"}, TimeEstimate: 90},
			{Day: "Wednesday", Topic: "Trie Data Structure", Activities: "Prefix trees, autocomplete", Resources: []string{"galles_trie"}, TimeEstimate: 90},
			{Day: "Thursday", Topic: "Union-Find", Activities: "Disjoint set operations", Resources: []string{"visualgo_ufds"}, TimeEstimate: 90},
			{Day: "Friday", Topic: "System Design Prep", Activities: "Scalability, data structure choices", Resources: []string{"system_design_primer"}, TimeEstimate: 90},
			{Day: "Saturday", Topic: "Project Start: File Compressor", Activities: "Huffman coding implementation", Resources: []string{}, TimeEstimate: 180},
			{Day: "Sunday", Topic: "Final Project: Mini Database", Activities: "Complete system with all DSA concepts", Resources: []string{}, TimeEstimate: 180},
		},
	},
}
